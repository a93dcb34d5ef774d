package dto

import (
	"github.com/programmerrush/api-bills/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- CreateCompany DTOs ---

func NewCreateCompanyRequest(name, address, email, contactName, contactPhone string, operator *models.User) *CreateCompanyRequest {
	return &CreateCompanyRequest{
		name:         name,
		address:      address,
		email:        email,
		contactName:  contactName,
		contactPhone: contactPhone,
		operator:     operator,
	}
}

type CreateCompanyRequest struct {
	name         string
	address      string
	email        string
	contactName  string
	contactPhone string
	operator     *models.User
}

func (r *CreateCompanyRequest) GetName() string           { return r.name }
func (r *CreateCompanyRequest) GetAddress() string        { return r.address }
func (r *CreateCompanyRequest) GetEmail() string          { return r.email }
func (r *CreateCompanyRequest) GetContactName() string    { return r.contactName }
func (r *CreateCompanyRequest) GetContactPhone() string   { return r.contactPhone }
func (r *CreateCompanyRequest) GetOperator() *models.User { return r.operator }

// --- UpdateCompany DTOs ---

// UpdateCompanyRequest carries the mutable company fields; nil pointers are
// left untouched.
type UpdateCompanyRequest struct {
	companyID primitive.ObjectID
	operator  *models.User
	updates   map[string]interface{}
}

func NewUpdateCompanyRequest(companyID primitive.ObjectID, operator *models.User) *UpdateCompanyRequest {
	return &UpdateCompanyRequest{
		companyID: companyID,
		operator:  operator,
		updates:   map[string]interface{}{},
	}
}

func (r *UpdateCompanyRequest) GetCompanyID() primitive.ObjectID { return r.companyID }
func (r *UpdateCompanyRequest) GetOperator() *models.User        { return r.operator }
func (r *UpdateCompanyRequest) GetUpdates() map[string]interface{} {
	return r.updates
}

// Set records one field update. The field name must be a bson field name of
// models.Company.
func (r *UpdateCompanyRequest) Set(field string, value interface{}) *UpdateCompanyRequest {
	r.updates[field] = value
	return r
}

// HasChanges reports whether any field was provided.
func (r *UpdateCompanyRequest) HasChanges() bool { return len(r.updates) > 0 }
