// seed_admin crée ou remplace le compte administrateur du back-office.
//
// Usage: go run ./cmd/seed_admin <email> <mot-de-passe>
// Le mot de passe est haché en bcrypt avant d'être écrit dans le store.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgeit/astrolabe-qualif/internal/domain/entity"
	"github.com/forgeit/astrolabe-qualif/internal/infrastructure/postgres"
	"github.com/forgeit/astrolabe-qualif/pkg/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: seed_admin <email> <mot-de-passe>")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "Le mot de passe doit contenir au moins 8 caractères")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connexion à PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hachage du mot de passe: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewCredentialRepository(postgres.NewStore(pool))
	cred := &entity.Credential{
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Put(cred); err != nil {
		fmt.Fprintf(os.Stderr, "Écriture du compte: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Compte administrateur créé: %s\n", email)
}
