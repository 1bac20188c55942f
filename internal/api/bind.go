package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notarydesk/priorities/internal/dto/request"
)

// Route binding for the API interfaces. Each Wrap adapts the typed methods
// to gin handlers following the @METHOD(path) annotations.

type EmployeeAPIWrap struct{ inner IEmployeeAPI }

func NewEmployeeAPIWrap(inner IEmployeeAPI) *EmployeeAPIWrap { return &EmployeeAPIWrap{inner: inner} }

func (w *EmployeeAPIWrap) BindAll(r gin.IRouter) {
	r.GET("api/v1/employees", func(c *gin.Context) {
		resp, err := w.inner.List(c)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.POST("api/v1/employees", func(c *gin.Context) {
		var req request.CreateEmployeeRequest
		if !onGinBind(c, &req, "JSON") {
			return
		}
		resp, err := w.inner.Create(c, req)
		onGinResponse(c, http.StatusCreated, resp, err)
	})
	r.GET("api/v1/employees/:id", func(c *gin.Context) {
		resp, err := w.inner.Get(c, c.Param("id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.PUT("api/v1/employees/:id", func(c *gin.Context) {
		var req request.UpdateEmployeeRequest
		if !onGinBind(c, &req, "JSON") {
			return
		}
		resp, err := w.inner.Update(c, c.Param("id"), req)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.DELETE("api/v1/employees/:id", func(c *gin.Context) {
		resp, err := w.inner.Delete(c, c.Param("id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.GET("api/v1/employees/:id/priorities", func(c *gin.Context) {
		resp, err := w.inner.Priorities(c, c.Param("id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
}

type PriorityAPIWrap struct{ inner IPriorityAPI }

func NewPriorityAPIWrap(inner IPriorityAPI) *PriorityAPIWrap { return &PriorityAPIWrap{inner: inner} }

func (w *PriorityAPIWrap) BindAll(r gin.IRouter) {
	r.GET("api/v1/priorities", func(c *gin.Context) {
		resp, err := w.inner.List(c)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.GET("api/v1/priorities/colors", func(c *gin.Context) {
		resp, err := w.inner.Colors(c)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.POST("api/v1/priorities", func(c *gin.Context) {
		var req request.CreatePriorityRequest
		if !onGinBind(c, &req, "JSON") {
			return
		}
		resp, err := w.inner.Create(c, req)
		onGinResponse(c, http.StatusCreated, resp, err)
	})
	r.GET("api/v1/priorities/:id", func(c *gin.Context) {
		resp, err := w.inner.Get(c, c.Param("id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.PUT("api/v1/priorities/:id", func(c *gin.Context) {
		var req request.UpdatePriorityRequest
		if !onGinBind(c, &req, "JSON") {
			return
		}
		resp, err := w.inner.Update(c, c.Param("id"), req)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.DELETE("api/v1/priorities/:id", func(c *gin.Context) {
		resp, err := w.inner.Delete(c, c.Param("id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
}

type AssignmentAPIWrap struct{ inner IAssignmentAPI }

func NewAssignmentAPIWrap(inner IAssignmentAPI) *AssignmentAPIWrap {
	return &AssignmentAPIWrap{inner: inner}
}

func (w *AssignmentAPIWrap) BindAll(r gin.IRouter) {
	r.GET("api/v1/assignments/:employee_id", func(c *gin.Context) {
		resp, err := w.inner.Get(c, c.Param("employee_id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.GET("api/v1/assignments/:employee_id/available", func(c *gin.Context) {
		resp, err := w.inner.Available(c, c.Param("employee_id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.PUT("api/v1/assignments/:employee_id", func(c *gin.Context) {
		var req request.SaveAssignmentRequest
		if !onGinBind(c, &req, "JSON") {
			return
		}
		resp, err := w.inner.Save(c, c.Param("employee_id"), req)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.POST("api/v1/assignments/:employee_id/entries", func(c *gin.Context) {
		var req request.AddEntryRequest
		if !onGinBind(c, &req, "JSON") {
			return
		}
		resp, err := w.inner.AddEntry(c, c.Param("employee_id"), req)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.DELETE("api/v1/assignments/:employee_id/entries/:priority_id", func(c *gin.Context) {
		resp, err := w.inner.RemoveEntry(c, c.Param("employee_id"), c.Param("priority_id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.POST("api/v1/assignments/:employee_id/entries/:priority_id/up", func(c *gin.Context) {
		resp, err := w.inner.MoveUp(c, c.Param("employee_id"), c.Param("priority_id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.POST("api/v1/assignments/:employee_id/entries/:priority_id/down", func(c *gin.Context) {
		resp, err := w.inner.MoveDown(c, c.Param("employee_id"), c.Param("priority_id"))
		onGinResponse(c, http.StatusOK, resp, err)
	})
}

type CommonAPIWrap struct{ inner ICommonAPI }

func NewCommonAPIWrap(inner ICommonAPI) *CommonAPIWrap { return &CommonAPIWrap{inner: inner} }

func (w *CommonAPIWrap) BindAll(r gin.IRouter) {
	r.GET("api/v1/health", func(c *gin.Context) {
		resp, err := w.inner.HealthCheck(c)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.GET("api/v1/dashboard", func(c *gin.Context) {
		resp, err := w.inner.Dashboard(c)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.GET("api/v1/reports", func(c *gin.Context) {
		var req request.ReportRequest
		if !onGinBind(c, &req, "QUERY") {
			return
		}
		resp, err := w.inner.Report(c, req)
		onGinResponse(c, http.StatusOK, resp, err)
	})
	r.GET("api/v1/reports/xlsx", func(c *gin.Context) {
		var req request.ReportRequest
		if !onGinBind(c, &req, "QUERY") {
			return
		}
		if err := w.inner.ReportXLSX(c, req); err != nil {
			_ = c.Error(err)
		}
	})
	r.GET("api/v1/backup", func(c *gin.Context) {
		if err := w.inner.ExportBackup(c); err != nil {
			_ = c.Error(err)
		}
	})
	r.POST("api/v1/backup", func(c *gin.Context) {
		resp, err := w.inner.ImportBackup(c)
		onGinResponse(c, http.StatusOK, resp, err)
	})
}
