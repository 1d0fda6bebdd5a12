// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV_Semicolon(t *testing.T) {
	input := "\xEF\xBB\xBFData da Entrega;Responsável Entrega;Obrigação / Tarefa;Status\n" +
		"15/01/2024;Ana;Folha;No prazo\n" +
		";;;\n" +
		"16/01/2024;Bruno\n"

	table, err := Read("entregas.CSV", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Data da Entrega", "Responsável Entrega", "Obrigação / Tarefa", "Status"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"15/01/2024", "Ana", "Folha", "No prazo"}, table.Rows[0])
	assert.Equal(t, []string{"16/01/2024", "Bruno", "", ""}, table.Rows[1])
}

func TestReadCSV_CommaAndQuotes(t *testing.T) {
	input := "DATA DA ENTREGA,RESPONSAVEL ENTREGA,OBRIGACAO / TAREFA,STATUS\n" +
		"15/01/2024,\"Silva, Ana\",\"ICMS; apuração\",Atrasada\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Silva, Ana", table.Rows[0][1])
	assert.Equal(t, "ICMS; apuração", table.Rows[0][2])
}

func TestReadCSV_Tab(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("A\tB\n1\t2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, table.Headers)
	assert.Equal(t, [][]string{{"1", "2"}}, table.Rows)
}

func TestReadCSV_Windows1252(t *testing.T) {
	// "Responsável" with 0xE1 for "á"
	input := []byte("Respons\xe1vel;Status\nJo\xe3o;Atrasada\n")

	table, err := ReadCSV(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Responsável", table.Headers[0])
	assert.Equal(t, "João", table.Rows[0][0])
}

func TestReadCSV_LeadingBlankLines(t *testing.T) {
	input := "\n  \r\nDATA DA ENTREGA;RESPONSAVEL ENTREGA;OBRIGACAO / TAREFA;STATUS\n05/01/2024;Ana;DCTF;No prazo\n"

	table, err := ReadCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"DATA DA ENTREGA", "RESPONSAVEL ENTREGA", "OBRIGACAO / TAREFA", "STATUS"}, table.Headers)
	assert.Equal(t, [][]string{{"05/01/2024", "Ana", "DCTF", "No prazo"}}, table.Rows)
	assert.False(t, table.SerialDates)
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rune
	}{
		{"semicolon", "a;b;c\n1,5;2;3", ';'},
		{"tab after blank lines", "\n\n \na\tb\tc", '\t'},
		{"comma", "a,b\n", ','},
		{"single column", "a\n", ','},
		{"blank only", "\n \n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sniffDelimiter([]byte(tt.input)))
		})
	}
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\n\n ; ; \n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestRead_UnsupportedFormat(t *testing.T) {
	_, err := Read("entregas.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.False(t, Supported("entregas.pdf"))
	assert.True(t, Supported("entregas.xlsx"))
	assert.True(t, Supported("ENTREGAS.CSV"))
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"DATA DA ENTREGA", "RESPONSAVEL ENTREGA", "OBRIGACAO / TAREFA", "STATUS"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{45306, "Ana", "Folha", "No prazo"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"16/01/2024", "Bruno", "ICMS"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := Read("upload.xlsx", buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"DATA DA ENTREGA", "RESPONSAVEL ENTREGA", "OBRIGACAO / TAREFA", "STATUS"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "45306", table.Rows[0][0])
	assert.Equal(t, []string{"16/01/2024", "Bruno", "ICMS", ""}, table.Rows[1])

	assert.True(t, table.SerialDates)
	got, err := ParseDate(table.Rows[0][0], table.SerialDates)
	require.NoError(t, err)
	assert.Equal(t, "15/01/2024", FormatDate(got))
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrReadingFile)
}
