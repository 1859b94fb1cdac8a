package speech

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/futig/fitplan-backend/internal/entity"
	"github.com/futig/fitplan-backend/internal/pkg/validator"
	pkgHTTP "github.com/futig/fitplan-backend/pkg/http"
)

type fakeSynth struct {
	err     error
	text    string
	voiceID string
	calls   int
}

func (f *fakeSynth) Synthesize(_ context.Context, text, voiceID string) (*entity.Audio, error) {
	f.calls++
	f.text, f.voiceID = text, voiceID
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Audio{MIMEType: "audio/mpeg", Data: []byte("mp3")}, nil
}

func newTestUsecase(key string, synth Synthesizer) *SpeechUsecase {
	v := validator.New(config.LimitsConfig{MaxAssetItems: 10, MaxItemNameLength: 100, MaxSpeechChars: 1000, MaxMedicalHistoryChars: 100})
	cred := entity.Credential{Service: entity.ServiceElevenLabs, EnvVar: "ELEVENLABS_API_KEY", Value: key}
	return NewUsecase(cred, synth, v, "default-voice", zap.NewNop())
}

func TestSynthesizeUsesDefaultVoice(t *testing.T) {
	synth := &fakeSynth{}
	uc := newTestUsecase("key", synth)

	audio, err := uc.Synthesize(context.Background(), &entity.SpeechRequest{Text: "Go"})

	require.NoError(t, err)
	assert.Equal(t, "data:audio/mpeg;base64,bXAz", audio.DataURL())
	assert.Equal(t, "default-voice", synth.voiceID)
}

func TestNarratePlan(t *testing.T) {
	synth := &fakeSynth{}
	uc := newTestUsecase("key", synth)

	_, err := uc.NarratePlan(context.Background(), &entity.Plan{Workout: "Squats", Motivation: "Believe"}, "v2")

	require.NoError(t, err)
	assert.Equal(t, "Believe\n\nSquats", synth.text)
	assert.Equal(t, "v2", synth.voiceID)
}

func TestSynthesizeFailures(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		text      string
		synthErr  error
		wantKind  entity.ErrorKind
		wantCalls int
	}{
		{name: "empty text", key: "key", text: " ", wantKind: entity.ErrorKindValidation},
		{name: "missing key", key: "", text: "hi", wantKind: entity.ErrorKindMissingCredential},
		{name: "missing key wins over empty text", key: "", text: "", wantKind: entity.ErrorKindMissingCredential},
		{
			name: "rejected key", key: "bad", text: "hi",
			synthErr: &pkgHTTP.HTTPError{StatusCode: http.StatusUnauthorized}, wantKind: entity.ErrorKindInvalidCredential, wantCalls: 1,
		},
		{
			name: "upstream error", key: "key", text: "hi",
			synthErr: &pkgHTTP.HTTPError{StatusCode: http.StatusBadGateway}, wantKind: entity.ErrorKindUpstream, wantCalls: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			synth := &fakeSynth{err: tc.synthErr}
			uc := newTestUsecase(tc.key, synth)

			_, err := uc.Synthesize(context.Background(), &entity.SpeechRequest{Text: tc.text})

			var appErr *entity.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.wantKind, appErr.Kind)
			assert.Equal(t, tc.wantCalls, synth.calls)
		})
	}
}
