package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/httpresp"
	"github.com/homevista/realtor-api/internal/middleware"
	"github.com/homevista/realtor-api/internal/models"
	ucHome "github.com/homevista/realtor-api/internal/usecase/home"
)

type HomeHandler struct {
	list     *ucHome.ListHomes
	get      *ucHome.GetHome
	realtor  *ucHome.GetRealtor
	create   *ucHome.CreateHome
	update   *ucHome.UpdateHome
	delete   *ucHome.DeleteHome
	inquire  *ucHome.Inquire
	messages *ucHome.ListMessages
}

func NewHomeHandler(
	list *ucHome.ListHomes,
	get *ucHome.GetHome,
	realtor *ucHome.GetRealtor,
	create *ucHome.CreateHome,
	update *ucHome.UpdateHome,
	del *ucHome.DeleteHome,
	inquire *ucHome.Inquire,
	messages *ucHome.ListMessages,
) *HomeHandler {
	return &HomeHandler{
		list:     list,
		get:      get,
		realtor:  realtor,
		create:   create,
		update:   update,
		delete:   del,
		inquire:  inquire,
		messages: messages,
	}
}

// --------- Requests ---------

type CreateHomeRequest struct {
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	LandSize     float64 `json:"land_size"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	PropertyType string  `json:"property_type" binding:"required"`

	Images []struct {
		URL string `json:"url" binding:"required"`
	} `json:"images"`
}

type UpdateHomeRequest struct {
	Address      *string  `json:"address,omitempty"`
	City         *string  `json:"city,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	LandSize     *float64 `json:"land_size,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
}

type InquireRequest struct {
	Message string `json:"message" binding:"required"`
}

// --------- Helpers ---------

func homeIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_home_id", "Home id must be numeric.")
		return 0, false
	}
	return uint(id), true
}

func parseFilter(c *gin.Context) (domain.Filter, bool) {
	var filter domain.Filter

	filter.City = c.Query("city")

	if pt := c.Query("propertyType"); pt != "" {
		parsed, ok := models.ParsePropertyType(pt)
		if !ok {
			httperr.BadRequest(c, "invalid_property_type", "Unknown property type.")
			return filter, false
		}
		filter.PropertyType = parsed
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_price", "minPrice must be numeric.")
			return filter, false
		}
		filter.PriceGte = &v
	}

	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_price", "maxPrice must be numeric.")
			return filter, false
		}
		filter.PriceLte = &v
	}

	return filter, true
}

// --------- Handlers ---------

func (h *HomeHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	homes, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeHomeNotFound) {
			httperr.NotFound(c, httperr.CodeHomeNotFound, "No homes match the filter.")
			return
		}
		httperr.Internal(c, "failed_to_list_homes", "Could not list homes.")
		return
	}

	httpresp.OK(c, homes)
}

func (h *HomeHandler) Get(c *gin.Context) {
	id, ok := homeIDParam(c)
	if !ok {
		return
	}

	home, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeHomeNotFound) {
			httperr.NotFound(c, httperr.CodeHomeNotFound, "Home not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_home", "Could not fetch home.")
		return
	}

	httpresp.OK(c, home)
}

func (h *HomeHandler) GetRealtor(c *gin.Context) {
	id, ok := homeIDParam(c)
	if !ok {
		return
	}

	contact, err := h.realtor.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeHomeNotFound) {
			httperr.NotFound(c, httperr.CodeHomeNotFound, "Home not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_realtor", "Could not fetch realtor.")
		return
	}

	httpresp.OK(c, contact)
}

func (h *HomeHandler) Create(c *gin.Context) {
	realtorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	propertyType, ok := models.ParsePropertyType(req.PropertyType)
	if !ok {
		httperr.BadRequest(c, "invalid_property_type", "Unknown property type.")
		return
	}

	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		urls = append(urls, img.URL)
	}

	summary, err := h.create.Execute(c.Request.Context(), domain.CreateParams{
		Address:      req.Address,
		City:         req.City,
		Price:        req.Price,
		LandSize:     req.LandSize,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		PropertyType: propertyType,
		ImageURLs:    urls,
	}, realtorID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_home", "Could not create home.")
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *HomeHandler) Update(c *gin.Context) {
	id, ok := homeIDParam(c)
	if !ok {
		return
	}

	var req UpdateHomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	params := domain.UpdateParams{
		Address:   req.Address,
		City:      req.City,
		Price:     req.Price,
		LandSize:  req.LandSize,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
	}

	if req.PropertyType != nil {
		propertyType, ok := models.ParsePropertyType(*req.PropertyType)
		if !ok {
			httperr.BadRequest(c, "invalid_property_type", "Unknown property type.")
			return
		}
		params.PropertyType = &propertyType
	}

	summary, err := h.update.Execute(c.Request.Context(), id, params)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeHomeNotFound) {
			httperr.NotFound(c, httperr.CodeHomeNotFound, "Home not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_home", "Could not update home.")
		return
	}

	httpresp.OK(c, summary)
}

func (h *HomeHandler) Delete(c *gin.Context) {
	id, ok := homeIDParam(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, httperr.CodeHomeNotFound) {
			httperr.NotFound(c, httperr.CodeHomeNotFound, "Home not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_home", "Could not delete home.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *HomeHandler) Inquire(c *gin.Context) {
	buyerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := homeIDParam(c)
	if !ok {
		return
	}

	var req InquireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	msg, err := h.inquire.Execute(c.Request.Context(), buyerID, id, req.Message)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeHomeNotFound) {
			httperr.NotFound(c, httperr.CodeHomeNotFound, "Home not found.")
			return
		}
		httperr.Internal(c, "failed_to_create_inquiry", "Could not send inquiry.")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *HomeHandler) ListMessages(c *gin.Context) {
	id, ok := homeIDParam(c)
	if !ok {
		return
	}

	msgs, err := h.messages.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	httpresp.List(c, msgs)
}
