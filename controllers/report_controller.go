package controllers

import (
	"time"

	"github.com/posfoodkorjud/food-pos-system-remote-sub000/pkg/resp"
	"github.com/posfoodkorjud/food-pos-system-remote-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Orders *services.OrderService
}

func NewReportController(orders *services.OrderService) *ReportController {
	return &ReportController{Orders: orders}
}

// GET /reports/orders?start=2026-08-01&end=2026-08-31
// end เป็น inclusive ทั้งวัน (ปัดไปเที่ยงคืนวันถัดไป)
func (rc *ReportController) OrdersByDateRange(c *gin.Context) {
	const layout = "2006-01-02"

	start, err := time.Parse(layout, c.Query("start"))
	if err != nil {
		resp.BadRequest(c, "invalid start date")
		return
	}
	end, err := time.Parse(layout, c.Query("end"))
	if err != nil {
		resp.BadRequest(c, "invalid end date")
		return
	}
	end = end.AddDate(0, 0, 1)

	orders, err := rc.Orders.GetOrdersByDateRange(start, end)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
