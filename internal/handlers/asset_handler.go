package handlers

import (
	"moviegrid/internal/services"
	"moviegrid/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssetHandler struct {
	assetService *services.AssetService
	logger       *logrus.Logger
}

func NewAssetHandler(assetService *services.AssetService, logger *logrus.Logger) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		logger:       logger,
	}
}

// PresignPlaceholder godoc
// @Summary Get presigned URL for the placeholder poster
// @Description Generate a presigned URL for uploading the shared placeholder poster asset
// @Tags assets
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /assets/placeholder/presign [get]
func (h *AssetHandler) PresignPlaceholder(c *fiber.Ctx) error {
	presignedURL, publicURL, err := h.assetService.PresignPlaceholderUpload()
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
