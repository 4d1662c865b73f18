package repository

import (
	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment record in the database
func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByID retrieves a payment by its ID
func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByUserID retrieves a paginated list of payments made by a user
func (r *paymentRepository) GetByUserID(userID uint, offset, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&payments).Error
	return payments, err
}

// Update updates an existing payment record
func (r *paymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// List retrieves a paginated list of all payments
func (r *paymentRepository) List(offset, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&payments).Error
	return payments, err
}

// ListByStatus retrieves a paginated list of payments in the given state
func (r *paymentRepository) ListByStatus(status string, offset, limit int) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("status = ?", status).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&payments).Error
	return payments, err
}

// Count returns the total number of payment records
func (r *paymentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).Count(&count).Error
	return count, err
}

// SumCompletedCents returns the total amount collected across completed payments
func (r *paymentRepository) SumCompletedCents() (int64, error) {
	var total int64
	err := r.db.Model(&models.Payment{}).
		Where("status = ?", models.PAYMENT_COMPLETED).
		Select("COALESCE(SUM(amount_cents), 0)").
		Row().Scan(&total)
	return total, err
}
