package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice-service/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWizardForm() SettingsForm {
	return SettingsForm{
		DomainType:        "subdomain",
		PrimaryDomainName: "acme",
		FirstName:         "Ada",
		LastName:          "Lovelace",
		EmailID:           "ada@example.com",
		Mobile:            "+1 555 0100",
		SiteName:          "Acme Wellness",
	}
}

func TestWizardAdvancesThroughSteps(t *testing.T) {
	w := NewSettingsWizard(New("http://127.0.0.1:0", authedSession(t, 42)))
	w.SetForm(validWizardForm())

	assert.Equal(t, StepDomain, w.Step())
	for _, want := range []WizardStep{StepAgent, StepSite, StepDistributor, StepUpdate} {
		require.NoError(t, w.Next())
		assert.Equal(t, want, w.Step())
	}

	// Next on the last step stays put
	require.NoError(t, w.Next())
	assert.Equal(t, StepUpdate, w.Step())
}

func TestWizardBlocksInvalidStep(t *testing.T) {
	w := NewSettingsWizard(New("http://127.0.0.1:0", authedSession(t, 42)))

	err := w.Next()
	require.Error(t, err)
	stepErr, ok := err.(*StepError)
	require.True(t, ok)
	assert.Equal(t, StepDomain, stepErr.Step)
	assert.Equal(t, StepDomain, w.Step())
}

func TestWizardValidatesEmail(t *testing.T) {
	w := NewSettingsWizard(New("http://127.0.0.1:0", authedSession(t, 42)))
	form := validWizardForm()
	form.EmailID = "not-an-email"
	w.SetForm(form)

	require.NoError(t, w.Next())
	err := w.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestWizardBackIsUnconditional(t *testing.T) {
	w := NewSettingsWizard(New("http://127.0.0.1:0", authedSession(t, 42)))
	w.SetForm(validWizardForm())
	require.NoError(t, w.Next())

	// Blank out the form; Back must still work
	w.SetForm(SettingsForm{})
	w.Back()
	assert.Equal(t, StepDomain, w.Step())

	// Back on the first step stays put
	w.Back()
	assert.Equal(t, StepDomain, w.Step())
}

func TestWizardRejectsOversizedLogo(t *testing.T) {
	w := NewSettingsWizard(New("http://127.0.0.1:0", authedSession(t, 42)))
	w.SetForm(validWizardForm())
	w.SetLogo(&Logo{
		File:        File{Name: "logo.png", Content: strings.NewReader("x")},
		ContentType: "image/png",
		Size:        upload.MaxImageSize + 1,
	})

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	err := w.Next()
	require.Error(t, err)
	stepErr, ok := err.(*StepError)
	require.True(t, ok)
	assert.Equal(t, StepSite, stepErr.Step)
	assert.Contains(t, stepErr.Reason, "4MB")
}

func TestWizardSubmitSendsWholeForm(t *testing.T) {
	var gotForm map[string]string
	var gotLogo string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tenants/42/settings", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(8<<20))

		gotForm = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotForm[key] = r.FormValue(key)
		}
		if file, header, err := r.FormFile("files"); err == nil {
			gotLogo = header.Filename
			file.Close()
		}
		json.NewEncoder(w).Encode(map[string]string{"site_name": r.FormValue("site_name")})
	}))
	defer server.Close()

	w := NewSettingsWizard(New(server.URL, authedSession(t, 42)))
	w.SetForm(validWizardForm())
	w.SetLogo(&Logo{
		File:        File{Name: "logo.png", Content: strings.NewReader("png-bytes")},
		ContentType: "image/png",
		Size:        9,
	})

	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, "subdomain", gotForm["domain_type"])
	assert.Equal(t, "acme", gotForm["primary_domain_name"])
	assert.Equal(t, "ada@example.com", gotForm["email_id"])
	assert.Equal(t, "Acme Wellness", gotForm["site_name"])
	assert.Equal(t, "logo.png", gotLogo)
	assert.False(t, w.Submitting())
}

func TestWizardSubmitValidatesEverything(t *testing.T) {
	w := NewSettingsWizard(New("http://127.0.0.1:0", authedSession(t, 42)))
	form := validWizardForm()
	form.Mobile = ""
	w.SetForm(form)

	err := w.Submit(context.Background())
	require.Error(t, err)
	stepErr, ok := err.(*StepError)
	require.True(t, ok)
	assert.Equal(t, StepAgent, stepErr.Step)
}

func TestWizardPrefill(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"domain_type":         "primary",
			"primary_domain_name": "acmewellness.com",
			"site_name":           "Acme Wellness",
		})
	}))
	defer server.Close()

	w := NewSettingsWizard(New(server.URL, authedSession(t, 42)))
	require.NoError(t, w.Prefill(context.Background()))

	form := w.Form()
	assert.Equal(t, "primary", form.DomainType)
	assert.Equal(t, "acmewellness.com", form.PrimaryDomainName)
	assert.Equal(t, "Acme Wellness", form.SiteName)
}
