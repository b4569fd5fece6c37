package loaders

import (
	"strings"
	"testing"

	"cookie-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRowReader_ReadRows(t *testing.T) {
	t.Parallel()

	input := `_raw,_time,index,host
"2021-09-15 INFO BEGIN-COOKIE-SIZES(total=30) a: 1, bb: 22 END-COOKIE-SIZES",2021-09-15T17:51:13.000+0000,prod,app-1
"no marker, just text",2021-09-15T17:52:13.000+0000,stage,app-2
`

	rows, err := NewCSVRowReader(DefaultColumns).ReadRows(strings.NewReader(input))
	require.NoError(t, err)

	expected := []models.RawRow{
		{
			Raw:         "2021-09-15 INFO BEGIN-COOKIE-SIZES(total=30) a: 1, bb: 22 END-COOKIE-SIZES",
			Time:        "2021-09-15T17:51:13.000+0000",
			Environment: "prod",
		},
		{
			Raw:         "no marker, just text",
			Time:        "2021-09-15T17:52:13.000+0000",
			Environment: "stage",
		},
	}
	assert.Equal(t, expected, rows)
}

func TestCSVRowReader_ReadRows_ColumnOrderAndBOM(t *testing.T) {
	t.Parallel()

	input := "\ufeffindex,_time,_raw\nprod,2021-09-15T17:51:13Z,hello\n"

	rows, err := NewCSVRowReader(DefaultColumns).ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.RawRow{{Raw: "hello", Time: "2021-09-15T17:51:13Z", Environment: "prod"}}, rows)
}

func TestCSVRowReader_ReadRows_ShortRows(t *testing.T) {
	t.Parallel()

	input := "_raw,_time,index\nonly raw\n"

	rows, err := NewCSVRowReader(DefaultColumns).ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.RawRow{{Raw: "only raw"}}, rows)
}

func TestCSVRowReader_ReadRows_BareQuotesInUnquotedField(t *testing.T) {
	t.Parallel()

	input := `_raw,_time,index
msg "x" BEGIN-COOKIE-SIZES(total=10) csrftoken: 64 END-COOKIE-SIZES,2021-09-15T17:51:13.000+0000,prod
"BEGIN-COOKIE-SIZES(total=20) csrftoken: 70 END-COOKIE-SIZES",2021-09-15T17:52:13.000+0000,stage
`

	rows, err := NewCSVRowReader(DefaultColumns).ReadRows(strings.NewReader(input))
	require.NoError(t, err)

	expected := []models.RawRow{
		{
			Raw:         `msg "x" BEGIN-COOKIE-SIZES(total=10) csrftoken: 64 END-COOKIE-SIZES`,
			Time:        "2021-09-15T17:51:13.000+0000",
			Environment: "prod",
		},
		{
			Raw:         "BEGIN-COOKIE-SIZES(total=20) csrftoken: 70 END-COOKIE-SIZES",
			Time:        "2021-09-15T17:52:13.000+0000",
			Environment: "stage",
		},
	}
	assert.Equal(t, expected, rows)
}

func TestCSVRowReader_ReadRows_CustomColumns(t *testing.T) {
	t.Parallel()

	input := "message,timestamp,env\nhello,2021-09-15T17:51:13Z,prod\n"
	columns := Columns{Raw: "message", Time: "timestamp", Environment: "env"}

	rows, err := NewCSVRowReader(columns).ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.RawRow{{Raw: "hello", Time: "2021-09-15T17:51:13Z", Environment: "prod"}}, rows)
}

func TestCSVRowReader_ReadRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expectedErr error
		errContains string
	}{
		{
			name:        "empty input",
			input:       "",
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "missing raw column",
			input:       "_time,index\n2021-09-15T17:51:13Z,prod\n",
			expectedErr: ErrMissingColumn,
			errContains: `"_raw"`,
		},
		{
			name:        "missing index column",
			input:       "_raw,_time\nx,2021-09-15T17:51:13Z\n",
			expectedErr: ErrMissingColumn,
			errContains: `"index"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows, err := NewCSVRowReader(DefaultColumns).ReadRows(strings.NewReader(tt.input))
			assert.Nil(t, rows)
			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
