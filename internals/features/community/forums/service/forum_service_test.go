package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/features/community/forums/dto"
	"capacitajun_backend/internals/helpers/testdb"
)

func TestListPosts_ByTag(t *testing.T) {
	db, mock := testdb.New(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM forum_posts AS p LEFT JOIN profiles pr .* WHERE p.deleted_at IS NULL AND \$1 = ANY\(p.forum_post_tags\)`).
		WithArgs("excel").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT p.forum_post_id, .* AS reply_count FROM forum_posts AS p .* ORDER BY p.forum_post_is_pinned DESC, p.created_at DESC LIMIT \$2`).
		WithArgs("excel", 10).
		WillReturnRows(sqlmock.NewRows([]string{"forum_post_id", "author_name", "forum_post_title", "forum_post_tags", "reply_count"}).
			AddRow(uuid.NewString(), "Ana Souza", "Atalhos no Excel", "{excel,produtividade}", 4))

	rows, total, err := ListPosts(context.Background(), db, ListFilter{Tag: "#Excel"}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Souza", rows[0].AuthorName)
	assert.EqualValues(t, 4, rows[0].ReplyCount)
	assert.Equal(t, []string{"excel", "produtividade"}, []string(rows[0].ForumPostTags))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePost_OnlyAuthor(t *testing.T) {
	db, mock := testdb.New(t)
	id, author := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "forum_posts" WHERE forum_post_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"forum_post_id", "forum_post_author_id"}).AddRow(id.String(), author.String()))

	_, err := UpdatePost(context.Background(), db, uuid.New(), id, dto.PostRequest{Title: "Novo", Content: "x"})
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePost_AdminBypassesAuthorship(t *testing.T) {
	db, mock := testdb.New(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "forum_posts" WHERE forum_post_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"forum_post_id", "forum_post_author_id"}).AddRow(id.String(), uuid.NewString()))
	mock.ExpectExec(`UPDATE "forum_posts" SET "deleted_at"=\$1 WHERE forum_post_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeletePost(context.Background(), db, uuid.New(), true, id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPinned_Missing(t *testing.T) {
	db, mock := testdb.New(t)
	mock.ExpectExec(`UPDATE "forum_posts" SET "forum_post_is_pinned"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, SetPinned(context.Background(), db, uuid.New(), true), ErrPostNotFound)
}
