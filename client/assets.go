package client

import (
	"context"
	"fmt"
	"net/http"

	"itam/internal/models"
)

// AssetPayload is the create/update request body. Dates are YYYY-MM-DD
// strings, empty meaning unset.
type AssetPayload struct {
	AssetID              string `json:"asset_id"`
	SerialNumber         string `json:"serial_number"`
	HardwareType         string `json:"hardware_type"`
	ModelNumber          string `json:"model_number"`
	OwnerFullname        string `json:"owner_fullname"`
	Hostname             string `json:"hostname"`
	PNumber              string `json:"p_number"`
	Cadre                string `json:"cadre"`
	Department           string `json:"department"`
	Section              string `json:"section"`
	Building             string `json:"building"`
	Vendor               string `json:"vendor"`
	PONumber             string `json:"po_number"`
	PODate               string `json:"po_date"`
	DCNumber             string `json:"dc_number"`
	DCDate               string `json:"dc_date"`
	AssignedDate         string `json:"assigned_date"`
	ReplacementDuePeriod string `json:"replacement_due_period"`
	ReplacementDueDate   string `json:"replacement_due_date"`
	OperationalStatus    string `json:"operational_status"`
	DispositionStatus    string `json:"disposition_status"`
	IsCommon             bool   `json:"is_common"`
}

// AssetPage is one page of the asset list.
type AssetPage struct {
	Assets     []models.Asset `json:"assets"`
	Total      int            `json:"total"`
	Pagination Pagination     `json:"pagination"`
}

func (c *Client) CreateAsset(ctx context.Context, payload AssetPayload) (*models.Asset, error) {
	var resp struct {
		Asset models.Asset `json:"asset"`
	}
	if err := c.do(ctx, http.MethodPost, "/asset/createAsset", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Asset, nil
}

func (c *Client) Assets(ctx context.Context, params ListParams) (*AssetPage, error) {
	var page AssetPage
	if err := c.do(ctx, http.MethodGet, "/asset/getAllAssets", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdateAsset(ctx context.Context, id uint, payload AssetPayload) (*models.Asset, error) {
	var resp struct {
		Asset models.Asset `json:"asset"`
	}
	path := fmt.Sprintf("/asset/assets/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Asset, nil
}

func (c *Client) DeleteAsset(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/asset/deleteAsset/%d", id), nil, nil, nil)
}

// MarkSurplus moves the asset to the surplus disposition and releases its
// owner fields.
func (c *Client) MarkSurplus(ctx context.Context, id uint) (*models.Asset, error) {
	var resp struct {
		Asset models.Asset `json:"asset"`
	}
	path := fmt.Sprintf("/asset/assets/%d/surplus", id)
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Asset, nil
}

// CheckExpiring runs the replacement-due sweep and returns how many assets
// were moved to the nearing-replacement status.
func (c *Client) CheckExpiring(ctx context.Context) (int, error) {
	var resp struct {
		Updated int `json:"updated"`
	}
	if err := c.do(ctx, http.MethodPost, "/asset/check-expiring", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Updated, nil
}

// ExportAssets downloads the full filtered set in the given format
// (csv, xlsx or pdf). Pagination parameters are ignored server-side.
func (c *Client) ExportAssets(ctx context.Context, format string, params ListParams) ([]byte, error) {
	v := params.values()
	v.Del("page")
	v.Del("limit")
	if format != "" {
		v.Set("format", format)
	}
	return c.doRaw(ctx, http.MethodGet, "/asset/export", v, nil)
}

// DropdownOptions returns every category grouped by type, for form
// dropdowns.
func (c *Client) DropdownOptions(ctx context.Context) (map[string][]models.Category, error) {
	var resp struct {
		Data map[string][]models.Category `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/asset/dropdown-options", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FilterOptions returns the distinct values present on assets, keyed by
// the plural filter names (departments, hardware_types, ...).
func (c *Client) FilterOptions(ctx context.Context) (map[string][]string, error) {
	var resp struct {
		Filters map[string][]string `json:"filters"`
	}
	if err := c.do(ctx, http.MethodGet, "/asset/filter-options", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Filters, nil
}
