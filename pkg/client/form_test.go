package client

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadWithoutFilesEncodesJSON(t *testing.T) {
	payload := NewPayload().
		Set("name", "Green Acres").
		SetNumber("gaj", 45).
		SetBool("featured", true)
	require.NoError(t, payload.SetJSON("keepImages", []string{"/uploads/a.jpg", "/uploads/b.jpg"}))

	reader, contentType, err := payload.encode()
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var body map[string]any
	require.NoError(t, json.NewDecoder(reader).Decode(&body))
	assert.Equal(t, "Green Acres", body["name"])
	assert.Equal(t, float64(45), body["gaj"])
	assert.Equal(t, true, body["featured"])
	assert.Equal(t, []any{"/uploads/a.jpg", "/uploads/b.jpg"}, body["keepImages"])
}

func TestPayloadWithFilesSwitchesToMultipart(t *testing.T) {
	payload := NewPayload().
		Set("title", "Diwali open house").
		AddFile("images", "lights.jpg", bytesReader("jpeg-bytes"))
	require.NoError(t, payload.SetJSON("keepImages", []string{"/uploads/old.jpg"}))

	reader, contentType, err := payload.encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	form, err := multipart.NewReader(reader, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, "Diwali open house", form.Value["title"][0])
	assert.JSONEq(t, `["/uploads/old.jpg"]`, form.Value["keepImages"][0])

	require.Len(t, form.File["images"], 1)
	file, err := form.File["images"][0].Open()
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

func TestPayloadHasFiles(t *testing.T) {
	assert.False(t, NewPayload().Set("a", "b").HasFiles())
	assert.True(t, NewPayload().AddFile("f", "x.png", bytesReader("x")).HasFiles())
}
