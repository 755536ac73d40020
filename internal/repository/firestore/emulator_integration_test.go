//go:build integration

package firestore_test

import (
	"testing"

	"github.com/linskybing/catalyst/internal/repository/firestore"
	"github.com/linskybing/catalyst/internal/testutils"
)

func TestFirestoreRepositories(t *testing.T) {
	testutils.RunRepositorySuite(t, firestore.NewRepositories(testutils.SetupFirestoreEmulator(t)))
}
