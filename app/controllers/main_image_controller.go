package controllers

import (
	"net/http"
	"path"

	"github.com/singitronic/storefront/config"
	"github.com/singitronic/storefront/pkg/logger"
	"github.com/singitronic/storefront/pkg/response"
	"github.com/singitronic/storefront/pkg/storage"
)

// MainImageController accepts product main-image uploads and stores them
// on the configured storage disk under the public upload directory.
type MainImageController struct{}

func NewMainImageController() *MainImageController {
	return &MainImageController{}
}

// Upload saves the "uploadedFile" multipart part. The confirmation
// messages are localized and the failure path writes the raw error as
// the body rather than the usual JSON envelope; storefront clients
// parse both as-is.
func (c *MainImageController) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("uploadedFile")
	if err != nil {
		response.Message(w, http.StatusBadRequest, "Nema otpremljenih fajlova")
		return
	}
	defer file.Close()

	dest := path.Join(config.UploadDir(), path.Base(header.Filename))
	if err := storage.PutStream(dest, file); err != nil {
		logger.WithCtx(r.Context()).Error("store main image", "error", err, "file", header.Filename)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error())) //nolint:errcheck
		return
	}

	response.Message(w, http.StatusOK, "Fajl je uspešno otpremljen")
}
