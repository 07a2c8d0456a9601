package services

import (
	"context"
	"errors"
	"testing"
)

func TestStripeGatewayRejectsBadAmount(t *testing.T) {
	gw := NewStripeGateway("sk_test_unused")

	for _, cents := range []int64{0, -100} {
		if _, err := gw.CreateIntent(context.Background(), cents); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("CreateIntent(%d) error = %v, want ErrInvalidPrice", cents, err)
		}
	}
}
