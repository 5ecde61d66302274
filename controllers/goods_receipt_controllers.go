package controllers

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/haccp-app/database"
	"github.com/yeremiapane/haccp-app/models"
	"github.com/yeremiapane/haccp-app/services"
	"github.com/yeremiapane/haccp-app/utils"
)

type GoodsReceiptController struct {
	Store database.Store
}

func NewGoodsReceiptController(store database.Store) *GoodsReceiptController {
	return &GoodsReceiptController{Store: store}
}

// GetAllGoodsReceipts, newest first
func (grc *GoodsReceiptController) GetAllGoodsReceipts(c *gin.Context) {
	receipts, err := grc.Store.ListGoodsReceipts(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, receipts)
}

// CreateGoodsReceipt
func (grc *GoodsReceiptController) CreateGoodsReceipt(c *gin.Context) {
	type reqBody struct {
		SupplierName string   `json:"supplierName" binding:"required,max=150"`
		ProductType  string   `json:"productType" binding:"required,max=150"`
		Temperature  *float64 `json:"temperature"`
		PackagingOk  *bool    `json:"packagingOk"`
		ReceivedBy   string   `json:"receivedBy" binding:"required,max=100"`
		Notes        string   `json:"notes"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"supplierName", &body.SupplierName},
		{"productType", &body.ProductType},
		{"receivedBy", &body.ReceivedBy},
	} {
		if err := requireText(f.name, f.value); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if body.Temperature != nil && (math.IsNaN(*body.Temperature) || math.IsInf(*body.Temperature, 0)) {
		respondServiceError(c, &services.ValidationError{Field: "temperature", Message: "must be a finite number"})
		return
	}

	receipt := models.GoodsReceipt{
		SupplierName: body.SupplierName,
		ProductType:  body.ProductType,
		Temperature:  body.Temperature,
		PackagingOk:  true,
		ReceivedBy:   body.ReceivedBy,
		Notes:        strings.TrimSpace(body.Notes),
	}
	if body.PackagingOk != nil {
		receipt.PackagingOk = *body.PackagingOk
	}

	if err := grc.Store.CreateGoodsReceipt(c.Request.Context(), &receipt); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if !receipt.PackagingOk {
		utils.InfoLogger.WithFields(logrus.Fields{
			"receipt_id": receipt.ID,
			"supplier":   receipt.SupplierName,
		}).Warn("goods received with damaged packaging")
	}

	utils.RespondJSON(c, http.StatusCreated, receipt)
}
