package prospect

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeit/astrolabe-qualif/internal/application/dto"
	"github.com/forgeit/astrolabe-qualif/internal/domain"
	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/domain/template"
	"github.com/forgeit/astrolabe-qualif/pkg/logger"
)

type fakeProspectRepo struct {
	items map[string]*entity.Prospect
	err   error
}

func newFakeProspectRepo() *fakeProspectRepo {
	return &fakeProspectRepo{items: make(map[string]*entity.Prospect)}
}

func (r *fakeProspectRepo) Create(p *entity.Prospect) error {
	if r.err != nil {
		return r.err
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProspectRepo) GetByID(id string) (*entity.Prospect, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProspectRepo) List() ([]*entity.Prospect, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Prospect, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProspectRepo) Update(p *entity.Prospect) error {
	if r.err != nil {
		return r.err
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProspectRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.items, id)
	return nil
}

type fakeConfigRepo struct {
	raw *template.RawConfig
	err error
}

func (r *fakeConfigRepo) Get() (*template.RawConfig, error) { return r.raw, r.err }

func (r *fakeConfigRepo) Put(cfg *entity.EmailTemplateConfig) error { return nil }

type recordingNotifier struct {
	alerts   []*entity.Prospect
	welcomes []*entity.Prospect
	configs  []*entity.EmailTemplateConfig
}

func (n *recordingNotifier) SendAdminAlert(p *entity.Prospect) {
	n.alerts = append(n.alerts, p)
}

func (n *recordingNotifier) SendWelcome(p *entity.Prospect, cfg *entity.EmailTemplateConfig) {
	n.welcomes = append(n.welcomes, p)
	n.configs = append(n.configs, cfg)
}

func newTestUseCase() (*UseCase, *fakeProspectRepo, *fakeConfigRepo, *recordingNotifier) {
	repo := newFakeProspectRepo()
	configs := &fakeConfigRepo{}
	notifier := &recordingNotifier{}
	log := logger.New(logger.Config{Env: "test", Level: "disabled"})
	return NewUseCase(repo, configs, notifier, log), repo, configs, notifier
}

func sampleRequest() dto.CreateProspectRequest {
	return dto.CreateProspectRequest{
		Identity: entity.Identity{
			FirstName: "Marie",
			LastName:  "Dupont",
			Email:     "marie.dupont@exemple.fr",
			Company:   "Exemple SAS",
			Position:  "CTO",
		},
		TechEcosystem: entity.TechEcosystem{
			TeamSize: "40-100",
			Forges:   []string{"GitLab"},
			Clouds:   []string{"AWS"},
		},
		Diagnostic: entity.Diagnostic{MaturityLevel: "Industrialisation"},
		Challenges: entity.Challenges{Priorities: []string{"Onboarding/Delivery"}},
		CTA:        entity.CTA{WantsDiagnostic: true},
	}
}

func TestCreate_AppliqueLesValeursParDefaut(t *testing.T) {
	uc, repo, _, notifier := newTestUseCase()

	out, err := uc.Create(sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusNouveau, out.Status)
	assert.NotEmpty(t, out.ID)
	_, parseErr := uuid.Parse(out.ID)
	assert.NoError(t, parseErr)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Marie", stored.Identity.FirstName)

	// Les deux notifications partent après la persistance.
	require.Len(t, notifier.alerts, 1)
	require.Len(t, notifier.welcomes, 1)
	assert.Equal(t, out.ID, notifier.alerts[0].ID)
}

func TestCreate_StatutExpliciteConserve(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	in := sampleRequest()
	in.Status = entity.StatusQualifie
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusQualifie, out.Status)
}

func TestCreate_StatutInvalideRejete(t *testing.T) {
	uc, repo, _, notifier := newTestUseCase()

	in := sampleRequest()
	in.Status = "Archivé"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Empty(t, repo.items)
	assert.Empty(t, notifier.alerts)
}

func TestCreate_EchecRepoSansNotification(t *testing.T) {
	uc, repo, _, notifier := newTestUseCase()
	repo.err = errors.New("connexion refusée")

	_, err := uc.Create(sampleRequest())
	require.Error(t, err)
	assert.Empty(t, notifier.alerts)
	assert.Empty(t, notifier.welcomes)
}

func TestCreate_ConfigAbsenteDonneTemplatesParDefaut(t *testing.T) {
	uc, _, _, notifier := newTestUseCase()

	_, err := uc.Create(sampleRequest())
	require.NoError(t, err)

	require.Len(t, notifier.configs, 1)
	require.NotNil(t, notifier.configs[0])
	assert.Equal(t, "1.0", notifier.configs[0].Version)
}

func TestCreate_EchecLectureConfigDonneNil(t *testing.T) {
	uc, _, configs, notifier := newTestUseCase()
	configs.err = errors.New("timeout")

	out, err := uc.Create(sampleRequest())
	require.NoError(t, err)
	assert.NotNil(t, out)

	// L'email part quand même, sans personnalisation.
	require.Len(t, notifier.configs, 1)
	assert.Nil(t, notifier.configs[0])
}

func TestGet_Absent(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Get("inconnu")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_Vide(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	out, err := uc.List()
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestUpdate_FusionPartielle(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	created, err := uc.Create(sampleRequest())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	status := entity.StatusEnDiscussion
	out, err := uc.Update(created.ID, dto.UpdateProspectRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusEnDiscussion, out.Status)
	// Seule la section fournie change, le reste est identique.
	assert.Equal(t, created.Identity, out.Identity)
	assert.Equal(t, created.TechEcosystem, out.TechEcosystem)
	assert.Equal(t, created.Challenges, out.Challenges)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdate_IgnoreChampsSysteme(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	created, err := uc.Create(sampleRequest())
	require.NoError(t, err)

	otherID := "autre-id"
	past := time.Now().Add(-24 * time.Hour)
	out, err := uc.Update(created.ID, dto.UpdateProspectRequest{
		ID:        &otherID,
		CreatedAt: &past,
		UpdatedAt: &past,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
	assert.False(t, out.UpdatedAt.Equal(past))
}

func TestUpdate_StatutInvalide(t *testing.T) {
	uc, repo, _, _ := newTestUseCase()

	created, err := uc.Create(sampleRequest())
	require.NoError(t, err)

	bad := "N'importe quoi"
	_, err = uc.Update(created.ID, dto.UpdateProspectRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	stored, _ := repo.GetByID(created.ID)
	assert.Equal(t, entity.StatusNouveau, stored.Status)
}

func TestUpdate_Absent(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	status := entity.StatusConverti
	_, err := uc.Update("inconnu", dto.UpdateProspectRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	created, err := uc.Create(sampleRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	// Supprimer un id déjà absent n'est pas une erreur.
	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.Get(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
