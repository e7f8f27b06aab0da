package handler

import (
	"io"

	"photoquiz/internal/domain"
	"photoquiz/internal/logger"
	"photoquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Boundary defaults: the core itself never defaults, the HTTP layer does.
const (
	defaultDifficulty = "Medium"
	defaultCategory   = "General"
)

// QuizHandler handles quiz generation HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a photo
// @Description Accepts an image plus difficulty and category and returns one multiple-choice quiz about the depicted object
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo of the object"
// @Param difficulty formData string false "Easy, Medium, Hard or Very Hard (default Medium)"
// @Param category formData string false "General, History, Fun Fact or Records/Statistics (default General)"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	image, err := readImage(c)
	if err != nil {
		logger.Get().Warn("Failed to read uploaded image", zap.Error(err))
		return domain.ValidationErrors{domain.NewMissingFieldError("image")}
	}

	difficulty := c.FormValue("difficulty", defaultDifficulty)
	category := c.FormValue("category", defaultCategory)

	resp, err := h.service.GenerateQuiz(c.Context(), image, difficulty, category)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// readImage pulls the uploaded file out of the multipart form. A missing
// file is reported as an empty ImageInput, which validation rejects.
func readImage(c *fiber.Ctx) (domain.ImageInput, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domain.ImageInput{}, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.ImageInput{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.ImageInput{}, err
	}

	return domain.ImageInput{
		Data:     data,
		MIMEType: fileHeader.Header.Get("Content-Type"),
	}, nil
}
