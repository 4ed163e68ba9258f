package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"backoffice-service/pkg/config"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "handlertest"},
	})
	os.Exit(m.Run())
}

// newFormContext builds an echo context carrying a urlencoded form body
// and a tenant id, the way requests arrive behind the tenant guard.
func newFormContext(t *testing.T, method string, form string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.Set("tenant_id", uint(42))
	return c, rec
}

func newJSONContext(t *testing.T, method string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.Set("tenant_id", uint(42))
	return c, rec
}

func TestCreateCategoryRequiresName(t *testing.T) {
	c, rec := newFormContext(t, http.MethodPost, "description=skincare+products")

	require.NoError(t, CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category name is required")
}

func TestCreateProductRequiresName(t *testing.T) {
	c, rec := newFormContext(t, http.MethodPost, "price=19.99")

	require.NoError(t, CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product name is required")
}

func TestCreateBlogRequiresTitleAndContent(t *testing.T) {
	c, rec := newFormContext(t, http.MethodPost, "title=Launch+day")

	require.NoError(t, CreateBlog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog title and content are required")
}

func TestCreateContactPageRequiresText(t *testing.T) {
	c, rec := newFormContext(t, http.MethodPost, "")

	require.NoError(t, CreateContactPage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Contact text is required")
}

func TestCreateFAQRequiresQuestionAndAnswer(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost, `{"question": "How do I join?"}`)

	require.NoError(t, CreateFAQ(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Question and answer are required")
}

func TestCreateTestimonialRequiresAuthorAndContent(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost, `{"author": "Ada"}`)

	require.NoError(t, CreateTestimonial(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Author and content are required")
}

func TestCreateDisclaimersRequiresContent(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost, `{}`)

	require.NoError(t, CreateDisclaimers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "At least one disclaimer is required")
}

func TestUpdateSettingsRequiresDomain(t *testing.T) {
	c, rec := newFormContext(t, http.MethodPut, "site_name=Acme")

	require.NoError(t, UpdateSettings(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Domain type and primary domain are required")
}

func TestLoginRequiresCredentials(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost, `{"email": "a@b.co"}`)

	require.NoError(t, Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email and password are required")
}

func TestRegisterRequiresTenantName(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost, `{"email": "a@b.co", "password": "secret"}`)

	require.NoError(t, Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "tenant name are required")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodPost,
		`{"email": "a@b.co", "password": "secret", "role": "wizard"}`)

	require.NoError(t, CreateUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Role must be owner or superadmin")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-wellness", Slugify("Acme Wellness"))
	assert.Equal(t, "acme-wellness", Slugify("  Acme  Wellness!  "))
	assert.Equal(t, "team-42", Slugify("Team #42"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestListTemplates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, ListTemplates(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	for _, name := range []string{"Classic", "Showcase", "Story"} {
		assert.Contains(t, rec.Body.String(), name)
	}
}
