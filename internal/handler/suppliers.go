package handler

import (
	"net/http"

	"catalog/internal/apierror"
	"catalog/internal/dto"
	"catalog/internal/model"
	"catalog/internal/service"

	"github.com/gin-gonic/gin"
)

type SuppliersHandler struct{ svc service.SupplierService }

func NewSuppliersHandler(svc service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc}
}

func (h *SuppliersHandler) List(c *gin.Context) {
	suppliers, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp := dto.SupplierListResponse{Data: make([]dto.SupplierResponse, 0, len(suppliers)), Total: len(suppliers)}
	for _, s := range suppliers {
		resp.Data = append(resp.Data, toSupplierResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns the supplier with its address.
func (h *SuppliersHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s, err := h.svc.GetWithAddress(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, apierror.New("Supplier not found"))
		return
	}
	c.JSON(http.StatusOK, toSupplierResponse(s))
}

// GetFull returns the supplier with its address and products.
func (h *SuppliersHandler) GetFull(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s, err := h.svc.GetWithProductsAndAddress(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, apierror.New("Supplier not found"))
		return
	}
	c.JSON(http.StatusOK, toSupplierResponse(s))
}

func (h *SuppliersHandler) Create(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s := model.NewSupplier(req.Name, req.Document, model.SupplierKind(req.Kind))
	if req.Active != nil {
		s.Active = *req.Active
	}
	if req.Address != nil {
		s.AttachAddress(newAddress(req.Address))
	}

	res, err := h.svc.Add(c.Request.Context(), s)
	if rejected(c, res, err) {
		return
	}
	c.JSON(http.StatusCreated, toSupplierResponse(s))
}

// Update replaces the supplier's fields. A body without address leaves the
// stored address alone.
func (h *SuppliersHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.SupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}

	s, err := h.svc.GetWithAddress(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, apierror.New("Supplier not found"))
		return
	}

	s.Name = req.Name
	s.Document = req.Document
	s.Kind = model.SupplierKind(req.Kind)
	if req.Active != nil {
		s.Active = *req.Active
	}
	current := s.Address
	s.Address = nil
	if req.Address != nil {
		s.AttachAddress(mergeAddress(current, req.Address))
	}

	res, err := h.svc.Update(c.Request.Context(), s)
	if rejected(c, res, err) {
		return
	}
	if s.Address == nil {
		s.Address = current
	}
	c.JSON(http.StatusOK, toSupplierResponse(s))
}

// UpdateAddress creates or replaces the supplier's address without touching
// the supplier itself.
func (h *SuppliersHandler) UpdateAddress(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.AddressInput
	if !bindAndValidate(c, &req) {
		return
	}

	s, err := h.svc.GetWithAddress(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, apierror.New("Supplier not found"))
		return
	}

	a := mergeAddress(s.Address, &req)
	a.SupplierID = s.ID
	res, err := h.svc.UpdateAddress(c.Request.Context(), a)
	if rejected(c, res, err) {
		return
	}
	c.JSON(http.StatusOK, toAddressResponse(a))
}

func (h *SuppliersHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	s, err := h.svc.GetWithAddress(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, apierror.New("Supplier not found"))
		return
	}

	res, err := h.svc.Remove(c.Request.Context(), id)
	if rejected(c, res, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Mapping ──────────────────────────────────────────────────────────────────

func newAddress(in *dto.AddressInput) *model.Address {
	a := model.NewAddress(in.Street, in.Number, in.PostalCode, in.District, in.City, in.State)
	a.Complement = in.Complement
	return a
}

// mergeAddress copies the input onto the stored address so its id and
// creation time survive, or builds a new one when there is none.
func mergeAddress(current *model.Address, in *dto.AddressInput) *model.Address {
	if current == nil {
		return newAddress(in)
	}
	a := *current
	a.Street = in.Street
	a.Number = in.Number
	a.Complement = in.Complement
	a.PostalCode = in.PostalCode
	a.District = in.District
	a.City = in.City
	a.State = in.State
	return &a
}

func toAddressResponse(a *model.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:         a.ID.String(),
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		PostalCode: a.PostalCode,
		District:   a.District,
		City:       a.City,
		State:      a.State,
	}
}

func toSupplierResponse(s *model.Supplier) dto.SupplierResponse {
	resp := dto.SupplierResponse{
		ID:       s.ID.String(),
		Name:     s.Name,
		Document: s.Document,
		Kind:     int(s.Kind),
		KindName: s.Kind.String(),
		Active:   s.Active,
		Address:  toAddressResponse(s.Address),
	}
	for i := range s.Products {
		resp.Products = append(resp.Products, toProductResponse(&s.Products[i]))
	}
	return resp
}
