package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dreed/habit-tracker/internal/domain"
	"github.com/dreed/habit-tracker/internal/repository/postgres"
	"github.com/dreed/habit-tracker/internal/service"
	"github.com/dreed/habit-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	todoService := service.NewTodoService(repos.Todo)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.CreateTodoInput
		wantErr error
		check   func(*testing.T, *domain.Todo)
	}{
		{
			name:  "valid todo",
			input: service.CreateTodoInput{Name: "Buy groceries", Date: "2025-06-01"},
			check: func(t *testing.T, todo *domain.Todo) {
				assert.Equal(t, owner.ID, todo.UserID)
				assert.Equal(t, "2025-06-01", todo.DateString())
				assert.False(t, todo.IsCompleted)
			},
		},
		{
			name:    "missing name",
			input:   service.CreateTodoInput{Date: "2025-06-01"},
			wantErr: domain.ErrNameRequired,
		},
		{
			name:    "bad date",
			input:   service.CreateTodoInput{Name: "X", Date: "June 1st"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "empty date",
			input:   service.CreateTodoInput{Name: "X"},
			wantErr: domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo, err := todoService.Create(ctx, owner.ID, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, todo)
			}
		})
	}
}

func TestTodoService_ToggleIsItsOwnInverse(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	todoService := service.NewTodoService(repos.Todo)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	todo := testutil.NewTodoBuilder().WithOwner(owner).Build(t, testDB.DB)

	flipped, err := todoService.Toggle(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.True(t, flipped.IsCompleted)

	restored, err := todoService.Toggle(ctx, owner.ID, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.IsCompleted, restored.IsCompleted,
		"two toggles must restore the original state")
}

func TestTodoService_PartialUpdatePreservesFields(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	todoService := service.NewTodoService(repos.Todo)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	todo := testutil.NewTodoBuilder().
		WithOwner(owner).
		WithName("Water the plants").
		WithDate(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)).
		Completed().
		Build(t, testDB.DB)

	name := "Water the garden"
	updated, err := todoService.Update(ctx, owner.ID, todo.ID, service.UpdateTodoInput{
		Name: &name,
	})
	require.NoError(t, err)

	assert.Equal(t, "Water the garden", updated.Name)
	assert.Equal(t, "2025-07-15", updated.DateString())
	assert.True(t, updated.IsCompleted)
}

func TestTodoService_OwnershipScoping(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	todoService := service.NewTodoService(repos.Todo)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	todo := testutil.NewTodoBuilder().WithOwner(alice).Build(t, testDB.DB)

	_, err := todoService.Get(ctx, bob.ID, todo.ID)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)

	_, err = todoService.Toggle(ctx, bob.ID, todo.ID)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)

	err = todoService.Delete(ctx, bob.ID, todo.ID)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
}
