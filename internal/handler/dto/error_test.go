package dto_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/strokedash/internal/domain"
	"github.com/mtlprog/strokedash/internal/handler/dto"
)

func assetErr(path string, err error) error {
	return fmt.Errorf("load assets: %w", &domain.AssetError{Path: path, Err: err})
}

func TestMapRenderError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{assetErr("output.png", domain.ErrAssetNotFound), http.StatusInternalServerError, "ASSET_NOT_FOUND"},
		{assetErr("output.png", domain.ErrAssetNotDecodable), http.StatusInternalServerError, "ASSET_NOT_DECODABLE"},
		{assetErr("output.png", domain.ErrAssetUnreadable), http.StatusInternalServerError, "ASSET_UNREADABLE"},
		{errors.New("template exploded"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		status, code, _ := dto.MapRenderError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestMapAssetError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{assetErr("x.png", domain.ErrUnknownAsset), http.StatusNotFound, "ASSET_NOT_FOUND"},
		{assetErr("../x.png", domain.ErrInvalidAssetPath), http.StatusNotFound, "ASSET_NOT_FOUND"},
		{assetErr("result.png", domain.ErrAssetNotFound), http.StatusNotFound, "ASSET_NOT_FOUND"},
		{assetErr("result.png", domain.ErrAssetNotDecodable), http.StatusInternalServerError, "ASSET_NOT_DECODABLE"},
	}

	for _, tt := range tests {
		status, code, _ := dto.MapAssetError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestMapRenderError_HidesUnknownDetails(t *testing.T) {
	_, _, message := dto.MapRenderError(errors.New("secret internals"))
	assert.Equal(t, "Internal server error", message)
}
