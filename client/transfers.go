package client

import (
	"context"
	"fmt"
	"net/http"

	"itam/internal/models"
)

// TransferPayload is the create-transfer request body.
type TransferPayload struct {
	AssetID          uint   `json:"asset_id"`
	NewOwnerFullname string `json:"new_owner_fullname"`
	NewHostname      string `json:"new_hostname"`
	NewPNumber       string `json:"new_p_number"`
	NewCadre         string `json:"new_cadre"`
	NewDepartment    string `json:"new_department"`
	NewSection       string `json:"new_section"`
	NewBuilding      string `json:"new_building"`
	TransferReason   string `json:"transfer_reason"`
}

// TransferPage is one page of the transfer list.
type TransferPage struct {
	Transfers  []models.AssetTransfer `json:"data"`
	Total      int                    `json:"total"`
	Pagination Pagination             `json:"pagination"`
}

func (c *Client) CreateTransfer(ctx context.Context, payload TransferPayload) (*models.AssetTransfer, error) {
	var resp struct {
		Data models.AssetTransfer `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/asset-transfers/create-transfer-asset", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) Transfers(ctx context.Context, params ListParams) (*TransferPage, error) {
	var page TransferPage
	if err := c.do(ctx, http.MethodGet, "/asset-transfers/get-all-transfer-assets", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AssetHistory returns every transfer recorded for one asset, newest first.
func (c *Client) AssetHistory(ctx context.Context, assetID uint) ([]models.AssetTransfer, error) {
	var resp struct {
		Data []models.AssetTransfer `json:"data"`
	}
	path := fmt.Sprintf("/asset-transfers/asset-history/%d", assetID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteTransfer(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/asset-transfers/asset-transfers/%d", id), nil, nil, nil)
}
