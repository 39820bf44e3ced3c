package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricetrends/server/internal/calculator"
)

type EMIRequest struct {
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       float64 `json:"tenure"`
	Schedule     bool    `json:"schedule"`
}

type EMIResponse struct {
	*calculator.EMIResult
	Formatted string                   `json:"formatted"`
	Schedule  []calculator.Installment `json:"schedule,omitempty"`
}

type AreaRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

type AreaResponse struct {
	Value     float64         `json:"value"`
	From      calculator.Unit `json:"from"`
	To        calculator.Unit `json:"to"`
	Result    *float64        `json:"result"`
	Formatted string          `json:"formatted"`
}

// PropertyValueRequest takes either a quality level or an explicit multiplier
type PropertyValueRequest struct {
	City       string   `json:"city"`
	Area       float64  `json:"area"`
	Quality    string   `json:"quality"`
	Multiplier *float64 `json:"multiplier"`
}

type PropertyValueResponse struct {
	*calculator.Estimate
	Formatted string `json:"formatted"`
}

func (h *Handler) CalculateEMI(c *gin.Context) {
	var req EMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := calculator.CalculateEMI(req.LoanAmount, req.InterestRate, req.Tenure)
	if err != nil {
		h.respondError(c, err, "calculate EMI")
		return
	}

	resp := EMIResponse{EMIResult: result, Formatted: calculator.FormatRupees(result.MonthlyPayment)}
	if req.Schedule {
		resp.Schedule, err = calculator.Schedule(req.LoanAmount, req.InterestRate, req.Tenure)
		if err != nil {
			h.respondError(c, err, "calculate EMI")
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListUnits(c *gin.Context) {
	c.JSON(http.StatusOK, calculator.Units)
}

// ConvertArea answers with a null result when there is nothing to show,
// such as a zero value.
func (h *Handler) ConvertArea(c *gin.Context) {
	var req AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	from, err := calculator.ParseUnit(req.From)
	if err != nil {
		h.respondError(c, err, "convert area")
		return
	}
	to, err := calculator.ParseUnit(req.To)
	if err != nil {
		h.respondError(c, err, "convert area")
		return
	}

	resp := AreaResponse{Value: req.Value, From: from, To: to}
	if v, ok := calculator.ConvertArea(req.Value, from, to); ok {
		resp.Result = &v
		resp.Formatted = calculator.FormatArea(v)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) EstimatePropertyValue(c *gin.Context) {
	var req PropertyValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	multiplier := calculator.QualityAverage.Multiplier()
	switch {
	case req.Multiplier != nil:
		multiplier = *req.Multiplier
	case req.Quality != "":
		q, err := calculator.ParseQuality(req.Quality)
		if err != nil {
			h.respondError(c, err, "estimate property value")
			return
		}
		multiplier = q.Multiplier()
	}

	est, err := h.evaluator.Estimate(req.City, req.Area, multiplier)
	if err != nil {
		h.respondError(c, err, "estimate property value")
		return
	}
	c.JSON(http.StatusOK, PropertyValueResponse{Estimate: est, Formatted: calculator.FormatRupees(est.Value)})
}
