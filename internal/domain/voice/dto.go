package voice

type Metadata struct {
	Duration   float64 `json:"duration"`
	Channels   int     `json:"channels"`
	ArchiveKey string  `json:"archive_key,omitempty"`
}

type Transcription struct {
	Transcript string   `json:"transcript"`
	Metadata   Metadata `json:"metadata"`
}

type APIKeyStatus struct {
	Configured bool   `json:"configured"`
	Message    string `json:"message,omitempty"`
}
