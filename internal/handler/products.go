package handler

import (
	"net/http"

	"catalog/internal/apierror"
	"catalog/internal/dto"
	"catalog/internal/model"
	"catalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List returns every product together with its supplier's name.
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.svc.GetAllWithSupplier(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toProductList(products))
}

func (h *ProductsHandler) ListBySupplier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	products, err := h.svc.GetBySupplier(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toProductList(products))
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.svc.GetWithSupplier(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p := model.NewProduct(uuid.MustParse(req.SupplierID), req.Name, req.Description, req.Value)
	p.Image = req.Image
	if req.Active != nil {
		p.Active = *req.Active
	}

	res, err := h.svc.Add(c.Request.Context(), p)
	if rejected(c, res, err) {
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(p))
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.GetWithSupplier(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}

	p.SupplierID = uuid.MustParse(req.SupplierID)
	p.Supplier = nil
	p.Name = req.Name
	p.Description = req.Description
	p.Image = req.Image
	p.Value = req.Value
	if req.Active != nil {
		p.Active = *req.Active
	}

	res, err := h.svc.Update(c.Request.Context(), p)
	if rejected(c, res, err) {
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := h.svc.Remove(c.Request.Context(), id)
	if rejected(c, res, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Mapping ──────────────────────────────────────────────────────────────────

func toProductResponse(p *model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          p.ID.String(),
		SupplierID:  p.SupplierID.String(),
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Value:       p.Value,
		Active:      p.Active,
	}
	if p.Supplier != nil {
		resp.SupplierName = p.Supplier.Name
	}
	return resp
}

func toProductList(products []*model.Product) dto.ProductListResponse {
	resp := dto.ProductListResponse{Data: make([]dto.ProductResponse, 0, len(products)), Total: len(products)}
	for _, p := range products {
		resp.Data = append(resp.Data, toProductResponse(p))
	}
	return resp
}
