//go:build integration

package repository_test

import (
	"testing"

	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/internal/testutils"
)

func TestPostgresRepositories(t *testing.T) {
	testutils.RunRepositorySuite(t, repository.NewRepositories(testutils.SetupPostgres(t)))
}
