package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"compracerta/internal/config"
	"compracerta/internal/dto"
	"compracerta/internal/model"
	"compracerta/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
	byEmail  map[string]uuid.UUID
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		usuarios: make(map[uuid.UUID]*model.Usuario),
		byEmail:  make(map[string]uuid.UUID),
	}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if _, dup := r.byEmail[u.Email]; dup {
		return errors.New("duplicate key value violates unique constraint")
	}
	cloned := *u
	r.usuarios[u.ID] = &cloned
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	cloned := *r.usuarios[id]
	return &cloned, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Ativo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cloned := *u
	r.usuarios[u.ID] = &cloned
	return nil
}

func (r *stubUsuarioRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("record not found")
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUsuarioRepo) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("record not found")
	}
	u.LastLoginAt = &at
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("record not found")
	}
	u.Ativo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("record not found")
	}
	u.Ativo = true
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, email, credencial string, hashear bool) *model.Usuario {
	t.Helper()
	stored := credencial
	if hashear {
		h, err := bcrypt.GenerateFromPassword([]byte(credencial), bcrypt.MinCost)
		require.NoError(t, err)
		stored = string(h)
	}
	u := &model.Usuario{
		Email:        email,
		Nome:         "Maria",
		Sobrenome:    "Silva",
		PasswordHash: stored,
		Papel:        model.PapelNormal,
		Ativo:        true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCredencialHasheada(t *testing.T) {
	h, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CredencialHasheada(string(h)))

	// Linhas importadas da base legada guardam a senha em claro.
	assert.False(t, CredencialHasheada("senha123"))
	assert.False(t, CredencialHasheada(""))
	// Prefixo certo mas tamanho errado — não é um digest bcrypt.
	assert.False(t, CredencialHasheada("$2a$12$curto"))
	// Tamanho certo mas sem prefixo bcrypt.
	assert.False(t, CredencialHasheada(strings.Repeat("x", 60)))
}

func TestLoginComHashBcrypt(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "maria@acme.com", "senha123", true)
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "maria@acme.com", Password: "senha123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, u.Email, resp.User.Email)

	// LastLoginAt foi carimbado.
	depois, _ := repo.FindByID(context.Background(), u.ID)
	assert.NotNil(t, depois.LastLoginAt)
}

func TestLoginMigraCredencialLegada(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "legado@acme.com", "senha-antiga", false)

	svc := NewAuthService(repo, testConfig())
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "legado@acme.com", Password: "senha-antiga"})
	require.NoError(t, err)

	// A senha em claro nunca sobrevive a um login bem sucedido.
	depois, _ := repo.FindByID(context.Background(), u.ID)
	assert.True(t, CredencialHasheada(depois.PasswordHash))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(depois.PasswordHash), []byte("senha-antiga")))

	// O login seguinte usa o caminho bcrypt normalmente.
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "legado@acme.com", Password: "senha-antiga"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "legado@acme.com", Password: "errada"})
	assert.Error(t, err)
}

func TestLoginMensagemUnicaDeFalha(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "maria@acme.com", "senha123", true)
	svc := NewAuthService(repo, testConfig())

	_, errSenha := svc.Login(context.Background(), dto.LoginRequest{Email: "maria@acme.com", Password: "errada"})
	_, errEmail := svc.Login(context.Background(), dto.LoginRequest{Email: "ninguem@acme.com", Password: "senha123"})
	require.Error(t, errSenha)
	require.Error(t, errEmail)
	// A mensagem não revela qual dos dois lados falhou.
	assert.Equal(t, errSenha.Error(), errEmail.Error())
}

func TestLoginUsuarioInativo(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "ex@acme.com", "senha123", true)
	require.NoError(t, repo.SoftDelete(context.Background(), u.ID))

	svc := NewAuthService(repo, testConfig())
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ex@acme.com", Password: "senha123"})
	assert.Error(t, err)
}

func TestRefreshRotacionaTokens(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "maria@acme.com", "senha123", true)
	svc := NewAuthService(repo, testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: "maria@acme.com", Password: "senha123"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.NotEmpty(t, renovado.RefreshToken)

	_, err = svc.Refresh(context.Background(), "nem-um-jwt")
	assert.Error(t, err)
}

func TestCriarUsuarioNuncaExpoeHash(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{
		Email:    "novo@acme.com",
		Nome:     "Novo",
		Password: "senha123",
		Papel:    model.PapelNormal,
	})
	require.NoError(t, err)
	assert.True(t, resp.Ativo)

	salvo, err := repo.FindByEmail(context.Background(), "novo@acme.com")
	require.NoError(t, err)
	assert.True(t, CredencialHasheada(salvo.PasswordHash))
}

func TestAtualizarUsuarioParcial(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "maria@acme.com", "senha123", true)
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.AtualizarUsuario(context.Background(), u.ID, dto.AtualizarUsuarioRequest{Setor: "Compras"})
	require.NoError(t, err)
	assert.Equal(t, "Compras", resp.Setor)
	// Campos não enviados são preservados.
	assert.Equal(t, "Maria", resp.Nome)
	assert.Equal(t, "Silva", resp.Sobrenome)
}
