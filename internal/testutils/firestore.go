package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const firestoreEmulatorImage = "gcr.io/google.com/cloudsdktool/google-cloud-cli:emulators"

// SetupFirestoreEmulator starts the Firestore emulator and returns a client
// bound to it. FIRESTORE_EMULATOR_HOST is set for the duration of t.
func SetupFirestoreEmulator(t *testing.T) *fs.Client {
	t.Helper()
	ctx := context.Background()

	emu, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        firestoreEmulatorImage,
			ExposedPorts: []string{"8080/tcp"},
			Cmd: []string{
				"gcloud", "emulators", "firestore", "start",
				"--host-port=0.0.0.0:8080",
			},
			WaitingFor: wait.ForLog("Dev App Server is now running").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = emu.Terminate(ctx) })

	host, err := emu.Host(ctx)
	require.NoError(t, err)
	port, err := emu.MappedPort(ctx, "8080")
	require.NoError(t, err)
	t.Setenv("FIRESTORE_EMULATOR_HOST", fmt.Sprintf("%s:%s", host, port.Port()))

	client, err := fs.NewClient(ctx, "catalyst-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
