package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/learning/questions/dto"
	"capacitajun_backend/internals/features/learning/questions/model"
)

var ErrEmptySheet = errors.New("planilha sem linhas")

// Sheet layout: question | A | B | C | D | correct | explanation
const (
	colQuestion = iota
	colA
	colB
	colC
	colD
	colCorrect
	colExplanation
)

var validate = validator.New()

// ParsedRow is a spreadsheet row that passed validation.
type ParsedRow struct {
	Row int
	Req dto.QuestionRequest
}

// ParseQuestionSheet reads the first worksheet. A header row is skipped when its
// first cell reads "question" or "pergunta".
func ParseQuestionSheet(r io.Reader) ([]ParsedRow, []dto.ImportRowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}

	var (
		parsed []ParsedRow
		errs   []dto.ImportRowError
	)
	for i, cells := range rows {
		rowNum := i + 1
		if i == 0 && isHeader(cells) {
			continue
		}
		if blankRow(cells) {
			continue
		}

		req, msg := rowToRequest(cells)
		if msg != "" {
			errs = append(errs, dto.ImportRowError{Row: rowNum, Message: msg})
			continue
		}
		parsed = append(parsed, ParsedRow{Row: rowNum, Req: req})
	}

	if len(parsed) == 0 && len(errs) == 0 {
		return nil, nil, ErrEmptySheet
	}
	return parsed, errs, nil
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}

func isHeader(cells []string) bool {
	h := strings.ToLower(cell(cells, colQuestion))
	return h == "question" || h == "pergunta"
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseCorrect accepts A-D (any case) or 1-4 and returns the 0-based index.
func ParseCorrect(raw string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'D' {
		return int(s[0] - 'A'), true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 4 {
		return n - 1, true
	}
	return 0, false
}

func rowToRequest(cells []string) (dto.QuestionRequest, string) {
	correct, ok := ParseCorrect(cell(cells, colCorrect))
	if !ok {
		return dto.QuestionRequest{}, "resposta correta inválida (use A-D ou 1-4)"
	}

	req := dto.QuestionRequest{
		Text:         cell(cells, colQuestion),
		Options:      []string{cell(cells, colA), cell(cells, colB), cell(cells, colC), cell(cells, colD)},
		CorrectIndex: &correct,
	}
	if e := cell(cells, colExplanation); e != "" {
		req.Explanation = &e
	}
	req.Normalize()

	if err := validate.Struct(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			switch ve[0].StructField() {
			case "Text":
				return dto.QuestionRequest{}, "pergunta vazia ou muito curta"
			default:
				return dto.QuestionRequest{}, "as quatro alternativas são obrigatórias"
			}
		}
		return dto.QuestionRequest{}, err.Error()
	}
	return req, ""
}

// InsertParsed stores all rows for lessonID in one transaction, appending after existing questions.
func InsertParsed(db *gorm.DB, lessonID uuid.UUID, rows []ParsedRow) error {
	if len(rows) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		next, err := NextOrderIndex(tx, lessonID)
		if err != nil {
			return err
		}
		batch := make([]model.QuestionModel, 0, len(rows))
		for i, r := range rows {
			m := model.QuestionModel{QuestionLessonID: lessonID}
			r.Req.OrderIndex = next + i
			r.Req.Apply(&m)
			batch = append(batch, m)
		}
		return tx.CreateInBatches(&batch, 100).Error
	})
}
