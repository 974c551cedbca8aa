// Package services contains the core application services.
//
// Services depend only on the domain package and the driven ports;
// the API connector and storage adapters are injected at wiring time.
package services
