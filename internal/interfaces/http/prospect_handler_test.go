package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeit/astrolabe-qualif/internal/application/auth"
	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/application/emailconfig"
	"github.com/forgeit/astrolabe-qualif/internal/application/gatekeeper"
	"github.com/forgeit/astrolabe-qualif/internal/application/prospect"
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/template"
	"github.com/forgeit/astrolabe-qualif/internal/infrastructure/recaptcha"
	apphttp "github.com/forgeit/astrolabe-qualif/internal/interfaces/http"
	"github.com/forgeit/astrolabe-qualif/pkg/logger"
	"github.com/forgeit/astrolabe-qualif/pkg/secrets"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire
// ──────────────────────────────────────────────────────────────────────────────

type memProspectRepo struct {
	items map[string]*entity.Prospect
}

func (r *memProspectRepo) Create(p *entity.Prospect) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProspectRepo) GetByID(id string) (*entity.Prospect, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProspectRepo) List() ([]*entity.Prospect, error) {
	out := make([]*entity.Prospect, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProspectRepo) Update(p *entity.Prospect) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProspectRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memConfigRepo struct {
	cfg *entity.EmailTemplateConfig
}

func (r *memConfigRepo) Get() (*template.RawConfig, error) {
	if r.cfg == nil {
		return nil, nil
	}
	raw := &template.RawConfig{
		Version:   r.cfg.Version,
		Templates: make(map[string]template.Raw, len(r.cfg.Templates)),
		UpdatedAt: r.cfg.UpdatedAt,
		UpdatedBy: r.cfg.UpdatedBy,
	}
	for name, tpl := range r.cfg.Templates {
		next, _ := json.Marshal(tpl.NextSteps)
		raw.Templates[name] = template.Raw{Constat: tpl.Constat, Solution: tpl.Solution, NextSteps: next}
	}
	return raw, nil
}

func (r *memConfigRepo) Put(cfg *entity.EmailTemplateConfig) error {
	r.cfg = cfg
	return nil
}

type memCredentialRepo struct{}

func (r *memCredentialRepo) FindByEmail(email string) (*entity.Credential, error) { return nil, nil }

func (r *memCredentialRepo) Put(c *entity.Credential) error { return nil }

type noopNotifier struct{}

func (noopNotifier) SendAdminAlert(p *entity.Prospect) {}

func (noopNotifier) SendWelcome(p *entity.Prospect, cfg *entity.EmailTemplateConfig) {}

// buildAPIApp câble l'application complète sur des fakes en mémoire.
func buildAPIApp() (*fiber.App, *memProspectRepo) {
	repo := &memProspectRepo{items: make(map[string]*entity.Prospect)}
	configs := &memConfigRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "disabled"})
	secret := secrets.NewCached(secrets.Static(testJWTSecret))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(&memCredentialRepo{}, auth.TokenConfig{
			Secret: secret,
			TTL:    time.Hour,
			Issuer: testIssuer,
		}),
		ProspectUC:    prospect.NewUseCase(repo, configs, noopNotifier{}, log),
		EmailConfigUC: emailconfig.NewUseCase(configs),
		Captcha:       recaptcha.NewClient(secrets.NewCached(secrets.Static("captcha-secret")), "http://127.0.0.1:1/siteverify"),
		Gatekeeper:    gatekeeper.New(secret),
	})
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeProspect(t *testing.T, resp *http.Response) dto.ProspectResponse {
	t.Helper()
	var out dto.ProspectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"identity": map[string]interface{}{
			"firstName": "Marie",
			"lastName":  "Dupont",
			"email":     "marie.dupont@exemple.fr",
			"company":   "Exemple SAS",
			"position":  "CTO",
		},
		"techEcosystem": map[string]interface{}{
			"teamSize": "40-100",
			"forges":   []string{"GitLab"},
			"clouds":   []string{"AWS"},
		},
		"diagnostic": map[string]interface{}{"maturityLevel": "Industrialisation"},
		"challenges": map[string]interface{}{"priorities": []string{"Onboarding/Delivery"}},
		"cta":        map[string]interface{}{"wantsDiagnostic": true},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests des routes prospects
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProspect_Public(t *testing.T) {
	app, repo := buildAPIApp()

	// Pas de header Authorization: la soumission du formulaire est publique.
	resp := doJSON(t, app, http.MethodPost, "/prospects", "", validCreateBody())
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeProspect(t, resp)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.StatusNouveau, out.Status)
	assert.Equal(t, "Marie", out.Identity.FirstName)
	assert.Len(t, repo.items, 1)
}

func TestCreateProspect_IdentiteIncomplete(t *testing.T) {
	app, _ := buildAPIApp()

	body := validCreateBody()
	body["identity"] = map[string]interface{}{"firstName": "Marie"}
	resp := doJSON(t, app, http.MethodPost, "/prospects", "", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListProspects_ExigeUnToken(t *testing.T) {
	app, _ := buildAPIApp()

	resp := doJSON(t, app, http.MethodGet, "/prospects", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListProspects_AvecToken(t *testing.T) {
	app, _ := buildAPIApp()
	token := adminToken(t, time.Hour)

	created := doJSON(t, app, http.MethodPost, "/prospects", "", validCreateBody())
	created.Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/prospects", token, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.ProspectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 1)
}

func TestGetProspect_Absent(t *testing.T) {
	app, _ := buildAPIApp()

	resp := doJSON(t, app, http.MethodGet, "/prospects/inconnu", adminToken(t, time.Hour), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateProspect_ChangeLeStatut(t *testing.T) {
	app, _ := buildAPIApp()
	token := adminToken(t, time.Hour)

	created := doJSON(t, app, http.MethodPost, "/prospects", "", validCreateBody())
	id := decodeProspect(t, created).ID
	created.Body.Close()

	resp := doJSON(t, app, http.MethodPatch, "/prospects/"+id, token,
		map[string]interface{}{"status": entity.StatusEnDiscussion})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeProspect(t, resp)
	assert.Equal(t, entity.StatusEnDiscussion, out.Status)
	assert.Equal(t, "Marie", out.Identity.FirstName)
}

func TestUpdateProspect_CleInconnueRejetee(t *testing.T) {
	app, _ := buildAPIApp()
	token := adminToken(t, time.Hour)

	created := doJSON(t, app, http.MethodPost, "/prospects", "", validCreateBody())
	id := decodeProspect(t, created).ID
	created.Body.Close()

	resp := doJSON(t, app, http.MethodPatch, "/prospects/"+id, token,
		map[string]interface{}{"statut": "Perdu"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProspect_StatutInvalide(t *testing.T) {
	app, _ := buildAPIApp()
	token := adminToken(t, time.Hour)

	created := doJSON(t, app, http.MethodPost, "/prospects", "", validCreateBody())
	id := decodeProspect(t, created).ID
	created.Body.Close()

	resp := doJSON(t, app, http.MethodPatch, "/prospects/"+id, token,
		map[string]interface{}{"status": "Archivé"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteProspect(t *testing.T) {
	app, repo := buildAPIApp()
	token := adminToken(t, time.Hour)

	created := doJSON(t, app, http.MethodPost, "/prospects", "", validCreateBody())
	id := decodeProspect(t, created).ID
	created.Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/prospects/"+id, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, repo.items)

	// Supprimer à nouveau reste un 204.
	again := doJSON(t, app, http.MethodDelete, "/prospects/"+id, token, nil)
	again.Body.Close()
	assert.Equal(t, http.StatusNoContent, again.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests des routes de configuration des templates
// ──────────────────────────────────────────────────────────────────────────────

func TestEmailConfig_GetDefautsPuisPut(t *testing.T) {
	app, _ := buildAPIApp()
	token := adminToken(t, time.Hour)

	resp := doJSON(t, app, http.MethodGet, "/config/email-templates", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cfg entity.EmailTemplateConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cfg))
	resp.Body.Close()
	assert.Equal(t, "1.0", cfg.Version)
	assert.Nil(t, cfg.UpdatedAt)

	put := doJSON(t, app, http.MethodPut, "/config/email-templates", token,
		map[string]interface{}{
			"templates": map[string]interface{}{
				"FinOps": map[string]interface{}{"constat": "Dépenses cloud opaques"},
			},
		})
	require.Equal(t, http.StatusOK, put.StatusCode)

	var updated entity.EmailTemplateConfig
	require.NoError(t, json.NewDecoder(put.Body).Decode(&updated))
	put.Body.Close()
	assert.Equal(t, "admin@forgeit.fr", updated.UpdatedBy)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, "Dépenses cloud opaques", updated.Templates["FinOps"].Constat)
}

func TestEmailConfig_PutSansTemplates(t *testing.T) {
	app, _ := buildAPIApp()

	resp := doJSON(t, app, http.MethodPut, "/config/email-templates", adminToken(t, time.Hour),
		map[string]interface{}{"version": "1.0"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Préflight CORS
// ──────────────────────────────────────────────────────────────────────────────

func TestOptions_SansToken(t *testing.T) {
	app, _ := buildAPIApp()

	req := httptest.NewRequest(http.MethodOptions, "/prospects/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
