package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/entities"
	"pantry-tracker-api/internal/utils"
	"pantry-tracker-api/pkg/subscription"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.CreatePaymentRequest, userID string) (domain.CreatePaymentResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	midtransService struct {
		midtransRepository  MidtransRepository
		subscriptionService subscription.SubscriptionService
		snapClient          snap.Client
		serverKey           string
	}
)

func NewMidtransService(midtransRepository MidtransRepository, subscriptionService subscription.SubscriptionService) MidtransService {
	serverKey := utils.GetConfig("SERVER_KEY")

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(serverKey, env)

	return &midtransService{
		midtransRepository:  midtransRepository,
		subscriptionService: subscriptionService,
		snapClient:          snapClient,
		serverKey:           serverKey,
	}
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.CreatePaymentRequest, userID string) (domain.CreatePaymentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreatePaymentResponse{}, domain.ErrParseUUID
	}

	planType := req.PlanType
	if planType == "" {
		planType = domain.PlanTypePremiumMonthly
	}

	orderID := fmt.Sprintf("premium-%s", uuid.NewString())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: domain.PremiumPriceIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    planType,
				Name:  "Premium Subscription (1 month)",
				Price: domain.PremiumPriceIDR,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreatePaymentResponse{}, domain.ErrPaymentFailed
	}

	transaction := &entities.PaymentTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		OrderID:     orderID,
		GrossAmount: domain.PremiumPriceIDR,
		PlanType:    planType,
		Status:      "pending",
	}

	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreatePaymentResponse{}, err
	}

	return domain.CreatePaymentResponse{
		OrderID:    orderID,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

func (s *midtransService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	if !s.validSignature(notification) {
		return domain.ErrPaymentFailed
	}

	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	transaction.PaymentType = notification.PaymentType

	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus != "accept" {
			transaction.Status = "failed"
			return s.midtransRepository.UpdateTransaction(ctx, transaction)
		}
		fallthrough
	case "settlement":
		transaction.Status = "settled"
		if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
			return err
		}
		_, err := s.subscriptionService.Activate(ctx, transaction.UserID.String(), domain.ActivateSubscriptionRequest{
			PlanType: transaction.PlanType,
			PriceUSD: domain.PremiumPriceUSD,
		})
		return err
	case "deny", "cancel", "failure":
		transaction.Status = "failed"
		return s.midtransRepository.UpdateTransaction(ctx, transaction)
	case "expire":
		transaction.Status = "expired"
		return s.midtransRepository.UpdateTransaction(ctx, transaction)
	}

	// Pending and unknown statuses leave the record as is.
	return nil
}

// validSignature checks the sha512(order_id+status_code+gross_amount+server_key)
// signature Midtrans attaches to every notification.
func (s *midtransService) validSignature(notification domain.MidtransNotification) bool {
	payload := notification.OrderID + notification.StatusCode + notification.GrossAmount + s.serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == notification.SignatureKey
}
