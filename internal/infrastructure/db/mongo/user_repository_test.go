package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/99minutos/auth-system/internal/core/domain"
)

const usersNS = "auth.users"

func TestUserRepository_LoadByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "a@b.com"},
			{Key: "password", Value: "h1"},
			{Key: "created_at", Value: int64(1700000000)},
		}))

		user, err := NewUserRepository(mt.DB).LoadByEmail(context.Background(), " A@B.com ")

		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, oid.Hex(), user.ID)
		assert.Equal(mt, "a@b.com", user.Email)
		assert.Equal(mt, "h1", user.PasswordHash)
		assert.Equal(mt, time.Unix(1700000000, 0).UTC(), user.CreatedAt)
		assert.True(mt, user.UpdatedAt.IsZero())
	})

	mt.Run("not found returns nil user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		user, err := NewUserRepository(mt.DB).LoadByEmail(context.Background(), "missing@b.com")

		require.NoError(mt, err)
		assert.Nil(mt, user)
	})

	mt.Run("driver error is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    1,
			Name:    "InternalError",
			Message: "boom",
		}))

		user, err := NewUserRepository(mt.DB).LoadByEmail(context.Background(), "a@b.com")

		require.Error(mt, err)
		assert.Nil(mt, user)
	})

	mt.Run("missing email", func(mt *mtest.T) {
		_, err := NewUserRepository(mt.DB).LoadByEmail(context.Background(), "")

		assert.True(mt, errors.Is(err, domain.NewMissingParamError("email")))
	})
}

func TestUserRepository_UpdateAccessToken(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := NewUserRepository(mt.DB).UpdateAccessToken(context.Background(), primitive.NewObjectID().Hex(), "tok-1")

		require.NoError(mt, err)
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := NewUserRepository(mt.DB).UpdateAccessToken(context.Background(), primitive.NewObjectID().Hex(), "tok-1")

		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("missing user id", func(mt *mtest.T) {
		err := NewUserRepository(mt.DB).UpdateAccessToken(context.Background(), "", "tok-1")

		assert.ErrorIs(mt, err, domain.NewMissingParamError("userId"))
	})

	mt.Run("malformed user id", func(mt *mtest.T) {
		err := NewUserRepository(mt.DB).UpdateAccessToken(context.Background(), "not-an-object-id", "tok-1")

		assert.ErrorIs(mt, err, domain.NewInvalidParamError("userId"))
	})
}

func TestUserRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		now := time.Now().UTC().Truncate(time.Second)
		user, err := NewUserRepository(mt.DB).Create(context.Background(), &domain.User{
			Email:        "New@B.com",
			PasswordHash: "h1",
			CreatedAt:    now,
			UpdatedAt:    now,
		})

		require.NoError(mt, err)
		assert.NotEmpty(mt, user.ID)
		assert.Equal(mt, "new@b.com", user.Email)
		assert.Equal(mt, "h1", user.PasswordHash)
		assert.Equal(mt, now, user.CreatedAt)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		user, err := NewUserRepository(mt.DB).Create(context.Background(), &domain.User{Email: "a@b.com", PasswordHash: "h1"})

		assert.ErrorIs(mt, err, domain.ErrUserExists)
		assert.Nil(mt, user)
	})
}
