package repositories

import (
	"fmt"
	"strings"

	"jobcard-backend/config"
	"jobcard-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	CreateCustomer(customer *models.Customer) (*models.Customer, error)
	UpdateCustomer(customer *models.Customer) (*models.Customer, error)
	DeleteCustomer(id uuid.UUID) error
	GetCustomerByID(id uuid.UUID) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	GetFilteredCustomers(limit, offset int, filters map[string]string) ([]models.Customer, int64, error)
}

type customerRepository struct {
	DB *gorm.DB
}

// NewCustomerRepository initializes a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (cr *customerRepository) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	if err := cr.DB.Create(customer).Error; err != nil {
		config.Logger.Error("Failed to create customer",
			zap.Error(err),
			zap.String("name", customer.Name))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	config.Logger.Info("Created customer",
		zap.String("customerID", customer.ID.String()),
		zap.String("name", customer.Name))
	return customer, nil
}

func (cr *customerRepository) UpdateCustomer(customer *models.Customer) (*models.Customer, error) {
	if err := cr.DB.Save(customer).Error; err != nil {
		config.Logger.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customerID", customer.ID.String()))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// DeleteCustomer removes the row outright; customers have no archive state.
// Existing job cards keep their snapshot fields, nothing cascades.
func (cr *customerRepository) DeleteCustomer(id uuid.UUID) error {
	result := cr.DB.Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		config.Logger.Error("Failed to delete customer",
			zap.Error(result.Error),
			zap.String("customerID", id.String()))
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (cr *customerRepository) GetCustomerByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := cr.DB.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (cr *customerRepository) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := cr.DB.Order("name ASC").Find(&customers).Error; err != nil {
		config.Logger.Error("Failed to get all customers", zap.Error(err))
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

func (cr *customerRepository) GetFilteredCustomers(limit, offset int, filters map[string]string) ([]models.Customer, int64, error) {
	query := cr.DB.Model(&models.Customer{})

	if search, ok := filters["search"]; ok && search != "" {
		term := "%" + strings.TrimSpace(search) + "%"
		query = query.Where(
			"name ILIKE ? OR mobile ILIKE ? OR company ILIKE ? OR email ILIKE ? OR vehicle_registration ILIKE ?",
			term, term, term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	if err := query.Order("updated_at DESC, created_at DESC").Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}
