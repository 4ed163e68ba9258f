package client

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"backoffice-service/pkg/upload"
)

// WizardStep identifies one of the settings wizard's screens
type WizardStep int

const (
	// StepDomain configures the site's domain
	StepDomain WizardStep = iota + 1
	// StepAgent collects the agent's basic information
	StepAgent
	// StepSite configures the site identity and logo
	StepSite
	// StepDistributor collects the distributor's company links
	StepDistributor
	// StepUpdate reviews the accumulated form and submits it
	StepUpdate
)

const lastStep = StepUpdate

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SettingsForm is the wizard's accumulated state. Field names line up
// with the backend's settings form fields; the logo travels separately
// as a file part.
type SettingsForm struct {
	DomainType        string `form:"domain_type" json:"domain_type"`
	PrimaryDomainName string `form:"primary_domain_name" json:"primary_domain_name"`
	SubDomain         string `form:"sub_domain" json:"sub_domain"`
	WebsiteLink       string `form:"website_link" json:"website_link"`
	FirstName         string `form:"first_name" json:"first_name"`
	LastName          string `form:"last_name" json:"last_name"`
	EmailID           string `form:"email_id" json:"email_id"`
	Mobile            string `form:"mobile" json:"mobile"`
	Address           string `form:"address" json:"address"`
	Skype             string `form:"skype" json:"skype"`
	PublishOnSite     bool   `form:"publish_on_site" json:"publish_on_site"`
	SiteName          string `form:"site_name" json:"site_name"`
	NHTWebsiteLink    string `form:"nht_website_link" json:"nht_website_link"`
	NHTStoreLink      string `form:"nht_store_link" json:"nht_store_link"`
	NHTJoiningLink    string `form:"nht_joining_link" json:"nht_joining_link"`
}

// Logo is the site logo picked in the site identity step
type Logo struct {
	File
	ContentType string
	Size        int64
}

// StepError reports why a wizard step refused to advance
type StepError struct {
	Step   WizardStep
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Reason)
}

// SettingsWizard walks the owner through the five settings screens.
// Next validates the current step before advancing; Back always works.
// Nothing reaches the backend until Submit sends the whole form.
type SettingsWizard struct {
	client *Client

	mu         sync.RWMutex
	step       WizardStep
	form       SettingsForm
	logo       *Logo
	submitting bool
}

// NewSettingsWizard starts a wizard at the domain step
func NewSettingsWizard(c *Client) *SettingsWizard {
	return &SettingsWizard{client: c, step: StepDomain}
}

// Step returns the wizard's current step
func (w *SettingsWizard) Step() WizardStep {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.step
}

// Form returns a copy of the accumulated form state
func (w *SettingsWizard) Form() SettingsForm {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.form
}

// SetForm replaces the accumulated form state. Screens call it after
// the user edits the current step's fields.
func (w *SettingsWizard) SetForm(form SettingsForm) {
	w.mu.Lock()
	w.form = form
	w.mu.Unlock()
}

// SetLogo attaches the picked logo file. It is validated when the site
// identity step advances.
func (w *SettingsWizard) SetLogo(logo *Logo) {
	w.mu.Lock()
	w.logo = logo
	w.mu.Unlock()
}

// Prefill seeds the form from stored settings so a returning owner
// edits rather than starts over.
func (w *SettingsWizard) Prefill(ctx context.Context) error {
	path, err := w.client.TenantPath("settings")
	if err != nil {
		return err
	}

	var form SettingsForm
	err = w.client.Get(ctx, path, &form)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}

	w.mu.Lock()
	w.form = form
	w.mu.Unlock()
	return nil
}

// Next validates the current step and advances. On the last step it is
// a no-op; callers use Submit there.
func (w *SettingsWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.validateStep(w.step); err != nil {
		return err
	}
	if w.step < lastStep {
		w.step++
	}
	return nil
}

// Back moves to the previous step without validating anything
func (w *SettingsWizard) Back() {
	w.mu.Lock()
	if w.step > StepDomain {
		w.step--
	}
	w.mu.Unlock()
}

// Submitting reports whether the final submission is in flight
func (w *SettingsWizard) Submitting() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.submitting
}

// Submit validates every step and sends the whole form in one request
func (w *SettingsWizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil
	}
	for step := StepDomain; step <= lastStep; step++ {
		if err := w.validateStep(step); err != nil {
			w.mu.Unlock()
			return err
		}
	}
	w.submitting = true
	form := w.form
	logo := w.logo
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
	}()

	path, err := w.client.TenantPath("settings")
	if err != nil {
		return err
	}

	var files []File
	if logo != nil {
		file := logo.File
		file.Field = "files"
		files = append(files, file)
	}

	return w.client.PutForm(ctx, path, &form, files, nil)
}

func (w *SettingsWizard) validateStep(step WizardStep) error {
	switch step {
	case StepDomain:
		if w.form.DomainType == "" {
			return &StepError{Step: step, Reason: "choose a domain type"}
		}
		if w.form.PrimaryDomainName == "" {
			return &StepError{Step: step, Reason: "a primary domain name is required"}
		}
	case StepAgent:
		if w.form.FirstName == "" {
			return &StepError{Step: step, Reason: "first name is required"}
		}
		if w.form.EmailID == "" || !emailPattern.MatchString(w.form.EmailID) {
			return &StepError{Step: step, Reason: "a valid email address is required"}
		}
		if w.form.Mobile == "" {
			return &StepError{Step: step, Reason: "a mobile number is required"}
		}
	case StepSite:
		if w.form.SiteName == "" {
			return &StepError{Step: step, Reason: "the site name is required"}
		}
		if w.logo != nil {
			err := upload.Validate(upload.KindImage, "files", w.logo.ContentType, w.logo.Size)
			if vErr, ok := err.(*upload.ValidationError); ok {
				return &StepError{Step: step, Reason: vErr.Reason}
			}
			if err != nil {
				return err
			}
		}
	case StepDistributor, StepUpdate:
		// The company links are optional and the review screen only
		// confirms what earlier steps already validated.
	}
	return nil
}
