package entity

import "encoding/base64"

type SpeechRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId,omitempty"`
}

// Audio is a synthesized speech payload.
type Audio struct {
	MIMEType string
	Data     []byte
}

// DataURL renders the audio for direct playback in a browser.
func (a *Audio) DataURL() string {
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}
