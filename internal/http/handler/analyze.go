package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/service"
)

// AnalyzeResume handles POST /analyze: multipart upload (field "file") plus
// an optional "job_description" form value. Extraction failures are reported
// as a 200 with a flat {"error": ...} body so clients can surface the
// message verbatim.
func AnalyzeResume(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
		}

		data, err := readMultipartFile(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read uploaded file"})
		}

		jobDescription := c.FormValue("job_description")

		report, err := svc.Analyze(c.UserContext(), service.Upload{Data: data, Filename: fh.Filename}, jobDescription)
		if err != nil {
			if errors.Is(err, service.ErrNoText) {
				return c.Status(fiber.StatusOK).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(report)
	}
}

// AnalyzeBulk handles POST /analyze/bulk: multipart field "files" repeated
// once per document. The response is always 200; per-file failures appear
// as error records inside results.
func AnalyzeBulk(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "files are required"})
		}

		fhs := form.File["files"]
		if len(fhs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "files are required"})
		}

		ups := make([]service.Upload, len(fhs))
		for i, fh := range fhs {
			// A read failure becomes a per-file extraction error downstream,
			// never an aborted batch.
			data, _ := readMultipartFile(fh)
			ups[i] = service.Upload{Data: data, Filename: fh.Filename}
		}

		items := svc.AnalyzeBatch(c.UserContext(), ups, c.FormValue("job_description"))

		return c.JSON(fiber.Map{
			"results":     items,
			"total_files": len(ups),
		})
	}
}

// HealthCheck reports service liveness. The analysis path has no runtime
// dependencies, so this never probes the database.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// LivenessProbe is the bare liveness endpoint for orchestrators.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Root identifies the API.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
		})
	}
}
