package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSurveyType(t *testing.T) {
	t.Run("accepts known types case-insensitively", func(t *testing.T) {
		got, err := ParseSurveyType("onlinebasic")
		require.NoError(t, err)
		assert.Equal(t, SurveyTypeOnlineBasic, got)

		got, err = ParseSurveyType("OnlineAdvanced")
		require.NoError(t, err)
		assert.Equal(t, SurveyTypeOnlineAdvanced, got)

		got, err = ParseSurveyType("EURO")
		require.NoError(t, err)
		assert.Equal(t, SurveyTypeEuro, got)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		_, err := ParseSurveyType("Telephone")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSurvey_Validate(t *testing.T) {
	t.Run("valid survey passes", func(t *testing.T) {
		s := &Survey{
			Type:       SurveyTypeOnlineBasic,
			Name:       "Consumer panel wave 12",
			ClientName: "Acme Research",
		}
		assert.NoError(t, s.Validate())
	})

	t.Run("missing name fails", func(t *testing.T) {
		s := &Survey{Type: SurveyTypeOnlineBasic}
		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	})

	t.Run("missing type fails", func(t *testing.T) {
		s := &Survey{Name: "No type"}
		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	})

	t.Run("bogus type fails", func(t *testing.T) {
		s := &Survey{Name: "Bad type", Type: SurveyType("CAPI")}
		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	})
}

func TestInterviewer_Validate(t *testing.T) {
	t.Run("valid interviewer passes", func(t *testing.T) {
		i := &Interviewer{
			UserName:     "jdoe",
			EmailAddress: "jdoe@example.com",
		}
		assert.NoError(t, i.Validate())
	})

	t.Run("missing user name fails", func(t *testing.T) {
		i := &Interviewer{EmailAddress: "jdoe@example.com"}
		assert.ErrorIs(t, i.Validate(), ErrInvalidInput)
	})

	t.Run("blank email fails", func(t *testing.T) {
		i := &Interviewer{UserName: "jdoe", EmailAddress: "   "}
		assert.ErrorIs(t, i.Validate(), ErrInvalidInput)
	})
}

func TestInterviewer_DisplayName(t *testing.T) {
	t.Run("uses full name when present", func(t *testing.T) {
		i := &Interviewer{UserName: "jdoe", FirstName: "Jane", LastName: "Doe"}
		assert.Equal(t, "Jane Doe", i.DisplayName())
	})

	t.Run("falls back to user name", func(t *testing.T) {
		i := &Interviewer{UserName: "jdoe"}
		assert.Equal(t, "jdoe", i.DisplayName())
	})

	t.Run("handles first name only", func(t *testing.T) {
		i := &Interviewer{UserName: "jdoe", FirstName: "Jane"}
		assert.Equal(t, "Jane", i.DisplayName())
	})
}
