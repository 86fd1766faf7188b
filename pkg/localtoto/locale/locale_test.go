package locale

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPlainMessage(t *testing.T) {
	l, err := New(quiet, "en")
	require.NoError(t, err)

	assert.Equal(t, "Submit Rating", l.T("RatingSubmit"))
	assert.Equal(t, "Please allow location access to continue.", l.T("AlertLocationRequired"))
}

func TestTemplateMessage(t *testing.T) {
	l := MustNew(quiet, "en")

	got := l.Tf("OTPSubtitle", map[string]any{"Phone": "+91 1924904358"})
	assert.Equal(t, "We've sent a 4-digit verification code to +91 1924904358", got)
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	l := MustNew(quiet, "fr-FR")
	assert.Equal(t, "Where to?", l.T("DropTitle"))
}

func TestMissingMessageRendersID(t *testing.T) {
	l := MustNew(quiet)
	assert.Equal(t, "NoSuchMessage", l.T("NoSuchMessage"))
}
