package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// --- Operator Methods ---

// ListOperators fetches up to limit operators. On any failure it returns the
// fixed fallback dataset together with the error, so callers always have
// rows to show and use the error only to decide whether to warn.
func (c *Client) ListOperators(ctx context.Context, limit int) ([]Operator, error) {
	params := QueryParams{}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	path := buildQuery("/api/operadoras", params)
	data, err := c.get(ctx, path)
	if err == nil {
		var items []Operator
		if items, err = decodeList[Operator](path, data); err == nil {
			return items, nil
		}
	}
	return FallbackOperators(), fmt.Errorf("list operators: %w", err)
}

// GetOperator fetches one operator's detail. On failure it returns a
// placeholder detail for cnpj together with the error.
func (c *Client) GetOperator(ctx context.Context, cnpj string) (*OperatorDetail, error) {
	path := "/api/operadoras/" + url.PathEscape(cnpj)
	data, err := c.get(ctx, path)
	if err == nil {
		var detail *OperatorDetail
		if detail, err = decodeOne[OperatorDetail](path, data); err == nil {
			return detail, nil
		}
	}
	return FallbackDetail(cnpj), fmt.Errorf("get operator %s: %w", cnpj, err)
}

// ListExpenseHistory fetches the per-period expense rows of one operator.
func (c *Client) ListExpenseHistory(ctx context.Context, cnpj string) ([]ExpenseRecord, error) {
	path := fmt.Sprintf("/api/operadoras/%s/despesas", url.PathEscape(cnpj))
	data, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("expense history %s: %w", cnpj, err)
	}
	items, err := decodeList[ExpenseRecord](path, data)
	if err != nil {
		return nil, fmt.Errorf("expense history %s: %w", cnpj, err)
	}
	return items, nil
}

// GetStatistics fetches the precomputed aggregate statistics. There is no
// fallback here: callers derive the figures from the rows they hold.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	const path = "/api/estatisticas"
	data, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	stats, err := decodeOne[Statistics](path, data)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	return stats, nil
}
