package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/internal/utils"
	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/storage"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
	storage        storage.Provider
	maxImageSize   int64
}

func NewVehicleHandler(vehicleService services.VehicleService, storageProvider storage.Provider, maxImageSize int64) *VehicleHandler {
	if maxImageSize <= 0 {
		maxImageSize = utils.MaxImageSize
	}
	return &VehicleHandler{
		vehicleService: vehicleService,
		storage:        storageProvider,
		maxImageSize:   maxImageSize,
	}
}

// CreateVehicle adds a vehicle to the fleet
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var input validators.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", vehicle)
}

// UpdateVehicle replaces all editable fields of a vehicle
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "vehicle")
	if !ok {
		return
	}

	var input validators.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, &input)
	if err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", vehicle)
}

// DeleteVehicle removes a vehicle from the fleet
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "vehicle")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	utils.SuccessResponse(c, "Vehicle deleted successfully", nil)
}

// ListVehicles returns the whole fleet ordered by id
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles := h.vehicleService.List(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", vehicles, &utils.Meta{Count: len(vehicles)})
}

// GetVehicle fetches a single vehicle by id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "vehicle")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// GetVehicleByPlate fetches a single vehicle by license plate
func (h *VehicleHandler) GetVehicleByPlate(c *gin.Context) {
	plate := c.Query("plate")
	if plate == "" {
		utils.BadRequestResponse(c, "Missing plate parameter")
		return
	}

	vehicle, err := h.vehicleService.GetByPlate(c.Request.Context(), plate)
	if err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// MarkMaintenance puts a vehicle into maintenance status
func (h *VehicleHandler) MarkMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "vehicle")
	if !ok {
		return
	}

	if err := h.vehicleService.MarkMaintenance(c.Request.Context(), id); err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	utils.SuccessResponse(c, "Vehicle marked for maintenance", nil)
}

// ListMaintenanceDue returns vehicles with service or inspection due by
// the optional ?date=YYYY-MM-DD cutoff
func (h *VehicleHandler) ListMaintenanceDue(c *gin.Context) {
	cutoff := c.Query("date")
	if cutoff != "" && !validators.ValidDate(cutoff) {
		utils.BadRequestResponse(c, "Invalid date parameter")
		return
	}

	vehicles := h.vehicleService.ListDueForMaintenance(c.Request.Context(), cutoff)
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", vehicles, &utils.Meta{Count: len(vehicles)})
}

// UploadImage accepts a multipart photo, bounds its dimensions and stores
// it under a fresh key
func (h *VehicleHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "vehicle")
	if !ok {
		return
	}

	if _, err := h.vehicleService.GetByID(c.Request.Context(), id); err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Missing image file")
		return
	}
	if fileHeader.Size > h.maxImageSize {
		utils.BadRequestResponse(c, "Image exceeds the maximum allowed size")
		return
	}
	if !utils.IsAllowedImageExt(fileHeader.Filename) {
		utils.BadRequestResponse(c, "Unsupported image format")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	img, err := utils.ResizeImage(file, fileHeader.Filename, utils.MaxImageWidth, utils.MaxImageHeight)
	if err != nil {
		utils.BadRequestResponse(c, "Could not decode image")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	format := strings.TrimPrefix(ext, ".")

	var buf bytes.Buffer
	if err := utils.EncodeImage(img, format, &buf, utils.JPEGQuality); err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	key := fmt.Sprintf("vehicles/%d/%s%s", id, uuid.New().String(), ext)
	uploaded, err := h.storage.Upload(c.Request.Context(), &storage.UploadRequest{
		Key:         key,
		Reader:      &buf,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        int64(buf.Len()),
	})
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "UPLOAD_FAILED", utils.ErrFileUploadFailed)
		return
	}

	if err := h.vehicleService.UpdateImage(c.Request.Context(), id, uploaded.URL); err != nil {
		writeServiceError(c, "vehicle", err)
		return
	}

	utils.SuccessResponse(c, "Vehicle image uploaded successfully", gin.H{
		"key": uploaded.Key,
		"url": uploaded.URL,
	})
}
