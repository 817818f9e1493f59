// Package secrets fournit une résolution paresseuse et mise en cache des secrets
// (clé de signature JWT, secret reCAPTCHA). Le secret est récupéré au plus une fois
// par durée de vie du process, sans variable globale: l'objet Cached est construit
// explicitement et injecté là où il est nécessaire.
package secrets

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Source sait récupérer la valeur d'un secret.
type Source interface {
	Fetch() (string, error)
}

// Static renvoie une valeur fixe (secret fourni directement par la configuration).
type Static string

// Fetch renvoie la valeur telle quelle.
func (s Static) Fetch() (string, error) {
	if s == "" {
		return "", fmt.Errorf("secrets: valeur vide")
	}
	return string(s), nil
}

// File lit le secret depuis un fichier (montage type docker secrets).
type File string

// Fetch lit le fichier et renvoie son contenu sans espaces terminaux.
func (f File) Fetch() (string, error) {
	b, err := os.ReadFile(string(f))
	if err != nil {
		return "", fmt.Errorf("secrets: lecture %s: %w", string(f), err)
	}
	v := strings.TrimSpace(string(b))
	if v == "" {
		return "", fmt.Errorf("secrets: fichier %s vide", string(f))
	}
	return v, nil
}

// Cached enveloppe une Source avec une sémantique "une seule récupération".
// La valeur (ou l'erreur) du premier Get est conservée pour les appels suivants.
type Cached struct {
	src  Source
	once sync.Once
	val  string
	err  error
}

// NewCached construit le cache autour d'une source.
func NewCached(src Source) *Cached {
	return &Cached{src: src}
}

// Get renvoie le secret, en le récupérant à la première invocation seulement.
func (c *Cached) Get() (string, error) {
	c.once.Do(func() {
		c.val, c.err = c.src.Fetch()
	})
	return c.val, c.err
}

// FromConfig choisit la source selon la configuration: fichier si un chemin est
// fourni, sinon valeur directe.
func FromConfig(value, file string) *Cached {
	if file != "" {
		return NewCached(File(file))
	}
	return NewCached(Static(value))
}
