package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound      = errors.New("ressource non trouvée")
	ErrUserNotFound  = errors.New("utilisateur non trouvé")
	ErrInvalidInput  = errors.New("entrée invalide")
	ErrInvalidStatus = errors.New("statut de prospect invalide")
	ErrUnauthorized  = errors.New("non autorisé")
	ErrForbidden     = errors.New("accès refusé")
)
