package repository

import "github.com/agoramarket/agora-api/internal/domain/entity"

// ReputacionRepository define el puerto de persistencia para Reputacion.
// Get devuelve (nil, nil) si la cuenta nunca fue calificada.
type ReputacionRepository interface {
	Get(cuenta string) (*entity.Reputacion, error)
	Put(reputacion *entity.Reputacion) error
	List() ([]*entity.Reputacion, error)
}
