package commands

import (
	"context"

	"loyaltybot/internal/infra"
	"loyaltybot/internal/pkg/errs"
	"loyaltybot/internal/pkg/jwt"
	"loyaltybot/internal/pkg/secret"

	"github.com/google/uuid"
)

// PartnerAuth exchanges a business credential for a short-lived API token.
// Only approved businesses can authenticate.
type PartnerAuth interface {
	IssueToken(ctx context.Context, businessID uuid.UUID, apiKey string) (string, error)
}

type partnerAuthImpl struct {
	businesses BusinessRepository
	tokens     *jwt.Service
}

func NewPartnerAuth(businesses BusinessRepository, tokens *jwt.Service) PartnerAuth {
	return &partnerAuthImpl{businesses: businesses, tokens: tokens}
}

func (p *partnerAuthImpl) IssueToken(ctx context.Context, businessID uuid.UUID, apiKey string) (string, error) {
	biz, err := p.businesses.FindByID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Indistinguishable from a bad key so lookups can't probe ids.
			return "", ErrInvalidAPIKey
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := secret.CompareAPIKey(biz.APIKeyHash(), apiKey); err != nil {
		return "", ErrInvalidAPIKey
	}
	if !biz.Approved() {
		return "", ErrBusinessNotApproved
	}

	token, err := p.tokens.GenerateToken(biz.ID())
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return token, nil
}
