package storage

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAudioKey(t *testing.T) {
	at := time.Date(2026, time.March, 4, 23, 0, 0, 0, time.FixedZone("x", -5*3600))
	key := AudioKey("Standup.MP3", at)
	assert.Regexp(t, regexp.MustCompile(`^audio/2026/03/[0-9a-f-]{36}\.mp3$`), key)

	noExt := AudioKey("blob", at)
	assert.Regexp(t, regexp.MustCompile(`^audio/2026/03/[0-9a-f-]{36}$`), noExt)
	assert.NotEqual(t, AudioKey("a.wav", at), AudioKey("a.wav", at))
}

func TestBackupKey(t *testing.T) {
	at := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "backups/20260102T030405Z/export.json", BackupKey("/tmp/out/export.json", at))
}
