// Package postgres persiste les entités comme documents JSON dans une table
// clé-valeur unique. Chaque enregistrement vit sous une paire clé de partition /
// sous-clé préfixée par le type d'entité:
//
//	PROSPECT#<id> / METADATA           : prospect
//	USER#<email>  / PROFILE            : credential
//	CONFIG#email_templates / METADATA  : configuration des templates
//
// C'est une convention clé-valeur, pas un schéma relationnel: pas de jointure,
// pas de verrou, dernière écriture gagnante.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Préfixes de partition et sous-clés fixes.
const (
	prospectPrefix = "PROSPECT#"
	userPrefix     = "USER#"
	configKey      = "CONFIG#email_templates"

	skMetadata = "METADATA"
	skProfile  = "PROFILE"
)

// Store accès clé-valeur à la table records.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construit le store sur un pool existant.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Get lit le document sous (pk, sk) et le décode dans out.
// Renvoie false sans erreur si la clé est absente.
func (s *Store) Get(pk, sk string, out any) (bool, error) {
	var doc []byte
	err := s.pool.QueryRow(context.Background(),
		`SELECT doc FROM records WHERE pk = $1 AND sk = $2`, pk, sk,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get %s/%s: %w", pk, sk, err)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return false, fmt.Errorf("décoder %s/%s: %w", pk, sk, err)
	}
	return true, nil
}

// Put insère ou remplace le document sous (pk, sk).
func (s *Store) Put(pk, sk string, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoder %s/%s: %w", pk, sk, err)
	}
	_, err = s.pool.Exec(context.Background(),
		`INSERT INTO records (pk, sk, doc) VALUES ($1, $2, $3)
		 ON CONFLICT (pk, sk) DO UPDATE SET doc = EXCLUDED.doc`,
		pk, sk, b,
	)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", pk, sk, err)
	}
	return nil
}

// Delete supprime le document sous (pk, sk). Clé absente: aucun effet, aucune erreur.
func (s *Store) Delete(pk, sk string) error {
	_, err := s.pool.Exec(context.Background(),
		`DELETE FROM records WHERE pk = $1 AND sk = $2`, pk, sk)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", pk, sk, err)
	}
	return nil
}

// ScanPrefix parcourt tous les documents dont la clé de partition commence par
// prefix, avec la sous-clé donnée, et appelle fn pour chacun.
func (s *Store) ScanPrefix(prefix, sk string, fn func(doc []byte) error) error {
	rows, err := s.pool.Query(context.Background(),
		`SELECT doc FROM records WHERE pk LIKE $1 || '%' AND sk = $2`, prefix, sk)
	if err != nil {
		return fmt.Errorf("scan %s: %w", prefix, err)
	}
	defer rows.Close()
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("scan doc: %w", err)
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return rows.Err()
}
