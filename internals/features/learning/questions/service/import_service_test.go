package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, r := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, ref, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseCorrect(t *testing.T) {
	cases := map[string]int{"A": 0, "b": 1, " C ": 2, "d": 3, "1": 0, "4": 3}
	for in, want := range cases {
		got, ok := ParseCorrect(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "E", "0", "5", "AB"} {
		_, ok := ParseCorrect(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseQuestionSheet(t *testing.T) {
	buf := buildSheet(t, [][]any{
		{"Pergunta", "A", "B", "C", "D", "Correta", "Explicação"},
		{"O que a LGPD protege?", "Dados pessoais", "Patentes", "Marcas", "Imóveis", "A", "Lei 13.709/2018"},
		{"Canal de denúncias é anônimo?", "Sim", "Não", "Depende", "", "1"},
		{"Quem aprova reembolsos?", "Gestor", "RH", "TI", "Financeiro", "Z"},
		{"Prazo para registrar ponto?", "1 dia", "2 dias", "3 dias", "1 semana", 2},
	})

	parsed, errs, err := ParseQuestionSheet(buf)
	require.NoError(t, err)

	require.Len(t, parsed, 2)
	assert.Equal(t, 2, parsed[0].Row)
	assert.Equal(t, 0, *parsed[0].Req.CorrectIndex)
	require.NotNil(t, parsed[0].Req.Explanation)
	assert.Equal(t, 5, parsed[1].Row)
	assert.Equal(t, 1, *parsed[1].Req.CorrectIndex)

	require.Len(t, errs, 2)
	assert.Equal(t, 3, errs[0].Row)
	assert.Contains(t, errs[0].Message, "alternativas")
	assert.Equal(t, 4, errs[1].Row)
	assert.Contains(t, errs[1].Message, "resposta correta")
}

func TestParseQuestionSheet_Empty(t *testing.T) {
	buf := buildSheet(t, [][]any{{"question", "A", "B", "C", "D", "correct"}})
	_, _, err := ParseQuestionSheet(buf)
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestParseQuestionSheet_NotExcel(t *testing.T) {
	_, _, err := ParseQuestionSheet(bytes.NewBufferString("not a spreadsheet"))
	assert.Error(t, err)
}
