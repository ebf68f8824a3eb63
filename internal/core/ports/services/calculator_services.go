package services

import (
	"context"

	"github.com/SscSPs/takehome_app/internal/dto"
)

// CalculatorSvcFacade runs take-home pay calculations against the live rate snapshot.
type CalculatorSvcFacade interface {
	Calculate(ctx context.Context, req dto.CalculateRequest) (*dto.CalculateResponse, error)
}
