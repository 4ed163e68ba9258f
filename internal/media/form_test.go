package media

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"backoffice-service/pkg/config"
	"backoffice-service/pkg/upload"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "mediatest"},
	})
	os.Exit(m.Run())
}

func newUploadContext(t *testing.T, contentType string, body *bytes.Buffer) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestSaveFormFileAbsentField(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("name", "Skincare"))
	require.NoError(t, writer.Close())

	c := newUploadContext(t, writer.FormDataContentType(), body)
	url, err := SaveFormFile(c, "image", upload.KindImage)

	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSaveFormFileNonMultipartBody(t *testing.T) {
	body := bytes.NewBufferString("name=Skincare")
	c := newUploadContext(t, echo.MIMEApplicationForm, body)

	url, err := SaveFormFile(c, "image", upload.KindImage)

	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSaveFormFileMalformedMultipart(t *testing.T) {
	body := bytes.NewBufferString("this is not a multipart payload")
	c := newUploadContext(t, "multipart/form-data; boundary=broken", body)

	_, err := SaveFormFile(c, "image", upload.KindImage)

	var ve *upload.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "image", ve.Field)
}

func TestSaveFormFileRejectsWrongType(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="notes.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c := newUploadContext(t, writer.FormDataContentType(), body)
	_, err = SaveFormFile(c, "image", upload.KindImage)

	var ve *upload.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "PNG")
}
