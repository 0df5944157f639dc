package service

import (
	"strings"
	"time"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/repository"

	"gorm.io/gorm"
)

// RecordShipmentInput 发货登记输入
type RecordShipmentInput struct {
	OrderID   uint
	ShippedAt time.Time
	Note      string
}

// ShipmentService 发货登记服务
type ShipmentService struct {
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
}

// NewShipmentService 创建发货登记服务
func NewShipmentService(shipmentRepo repository.ShipmentRepository, orderRepo repository.OrderRepository) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		orderRepo:    orderRepo,
	}
}

// RecordShipment 登记发货并将订单置为待揽收，两者在同一事务内完成
func (s *ShipmentService) RecordShipment(principal Principal, input RecordShipmentInput) (*models.Shipment, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	if input.OrderID == 0 {
		return nil, ErrOrderNotFound
	}
	shippedAt := input.ShippedAt
	if shippedAt.IsZero() {
		shippedAt = time.Now()
	}
	shipment := &models.Shipment{
		OrderID:   input.OrderID,
		StaffID:   principal.ID,
		ShippedAt: shippedAt,
		Note:      strings.TrimSpace(input.Note),
	}

	var previous string
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		shipmentRepo := s.shipmentRepo.WithTx(tx)

		order, err := orderRepo.GetByIDForUpdate(input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		count, err := shipmentRepo.CountByOrderID(order.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrShipmentExists
		}
		previous = order.Status
		if err := shipmentRepo.Create(shipment); err != nil {
			return err
		}
		_, err = orderRepo.UpdateStatus(order.ID, constants.OrderStatusAwaitingCourier)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("shipment_recorded",
		"shipment_id", shipment.ID,
		"order_id", shipment.OrderID,
		"staff_id", principal.ID,
		"previous_status", previous,
	)
	return shipment, nil
}

// ListShipments 发货记录列表
func (s *ShipmentService) ListShipments(principal Principal, page, pageSize int) ([]models.Shipment, int64, error) {
	if err := requireStaff(principal); err != nil {
		return nil, 0, err
	}
	return s.shipmentRepo.List(repository.ShipmentListFilter{
		Page:     page,
		PageSize: pageSize,
	})
}
