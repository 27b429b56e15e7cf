package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, rdb.Ping(context.Background()).Err())

	teardown := func() {
		rdb.Close()
		container.Terminate(context.Background())
	}

	return rdb, teardown
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewSessionRepository(rdb)
	userID := uuid.New()

	assert.NoError(t, repo.Save(ctx, "tok", userID, time.Minute))

	got, err := repo.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestSessionRepository_Get_UnknownToken(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSessionRepository(rdb)

	got, err := repo.Get(context.Background(), "never-saved")
	assert.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestSessionRepository_Expiry(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewSessionRepository(rdb)

	assert.NoError(t, repo.Save(ctx, "tok", uuid.New(), 100*time.Millisecond))
	time.Sleep(300 * time.Millisecond)

	got, err := repo.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestSessionRepository_Delete(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewSessionRepository(rdb)
	userID := uuid.New()

	assert.NoError(t, repo.Save(ctx, "tok", userID, time.Minute))
	assert.NoError(t, repo.Delete(ctx, "tok"))

	got, err := repo.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)

	// Deleting an absent token is not an error.
	assert.NoError(t, repo.Delete(ctx, "tok"))
}
