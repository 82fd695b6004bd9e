package handlers

import (
	"clinicdesk/internal/export"
	"clinicdesk/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS enabled and every route of the
// record service registered.
func NewRouter(patients *store.PatientStore, visits *store.VisitStore, exporter *export.Exporter) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	ph := &PatientHandler{Store: patients}
	vh := &VisitHandler{Store: visits}
	eh := &ExportHandler{Exporter: exporter}

	api := r.Group("/api")
	{
		api.GET("/patients", ph.ListPatients)
		api.POST("/patients", ph.CreatePatient)
		// Register before the :patient_id routes so "export" is not read
		// as an id.
		api.GET("/patients/export", eh.ExportRoster)
		api.GET("/patients/:patient_id", ph.GetPatient)
		api.PUT("/patients/:patient_id", ph.UpdatePatient)
		api.DELETE("/patients/:patient_id", ph.DeletePatient)
		api.GET("/patients/:patient_id/visits", vh.ListVisits)
		api.POST("/patients/:patient_id/visits", vh.CreateVisit)
	}

	return r
}
