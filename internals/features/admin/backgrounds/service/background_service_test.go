package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacitajun_backend/internals/helpers/imagex"
	"capacitajun_backend/internals/helpers/storage"
	"capacitajun_backend/internals/helpers/testdb"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for x := 0; x < 32; x++ {
		img.Set(x, x%16, color.RGBA{R: 200, G: 80, B: 40, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUpload_StoresWebPAndAppends(t *testing.T) {
	db, mock := testdb.New(t)
	st := storage.NewMemory("https://cdn.test/auth-backgrounds")

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(background_image_order\), -1\) \+ 1 FROM "auth_background_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))
	mock.ExpectQuery(`INSERT INTO "auth_background_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"background_image_id"}).AddRow(uuid.NewString()))

	m, err := New(db, st).Upload(context.Background(), bytes.NewReader(samplePNG(t)), "Escritório Azul.png")
	require.NoError(t, err)

	assert.Equal(t, 3, m.BackgroundImageOrder)
	assert.True(t, m.BackgroundImageIsActive)
	assert.Contains(t, m.BackgroundImageStoragePath, "backgrounds/escritorio-azul_")
	assert.Equal(t, "image/webp", st.Types[m.BackgroundImageStoragePath])
	assert.Equal(t, st.PublicURL(m.BackgroundImageStoragePath), m.BackgroundImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpload_RejectsNonImage(t *testing.T) {
	db, _ := testdb.New(t)
	st := storage.NewMemory("https://cdn.test/b")

	_, err := New(db, st).Upload(context.Background(), bytes.NewReader([]byte("plain text")), "notes.txt")
	assert.ErrorIs(t, err, imagex.ErrUnsupportedFormat)
	assert.Empty(t, st.Objects)
}

func TestUpload_StorageNotConfigured(t *testing.T) {
	db, mock := testdb.New(t)

	_, err := New(db, nil).Upload(context.Background(), bytes.NewReader(samplePNG(t)), "office.png")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_RemovesObject(t *testing.T) {
	db, mock := testdb.New(t)
	st := storage.NewMemory("https://cdn.test/b")
	key := "backgrounds/office.webp"
	st.Objects[key] = []byte("x")
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "auth_background_images" WHERE background_image_id = \$1 LIMIT \$2`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"background_image_id", "background_image_url", "background_image_storage_path"}).
			AddRow(id.String(), st.PublicURL(key), key))
	mock.ExpectExec(`DELETE FROM "auth_background_images" WHERE background_image_id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, New(db, st).Delete(context.Background(), id))
	assert.NotContains(t, st.Objects, key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := testdb.New(t)
	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "auth_background_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"background_image_id"}))

	err := New(db, storage.NewMemory("https://cdn.test/b")).Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}
