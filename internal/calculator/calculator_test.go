package calculator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimumRequirements() models.Requirements {
	return models.Requirements{
		Environment:        1,
		DataCatalog:        1,
		HiveVW:             1,
		HiveLiteExec:       1,
		HiveProdExec:       1,
		ImpalaVW:           1,
		ImpalaLiteExec:     1,
		ImpalaLiteExecCPU:  1,
		ImpalaLiteExecMem:  25,
		ImpalaLiteCoordQty: 1,
		ImpalaLiteCoordCPU: 1,
		ImpalaLiteCoordMem: 25,
		ImpalaProdExec:     1,
		ImpalaProdExecCPU:  1,
		ImpalaProdExecMem:  128,
		ImpalaProdCoordQty: 1,
		ImpalaProdCoordCPU: 1,
		ImpalaProdCoordMem: 128,
		DataVizSmall:       1,
		DataVizMedium:      1,
		DataVizLarge:       1,
		CDEService:         1,
		CDEVC:              1,
		JobQuantity:        1,
		JobExec:            1,
		JobDriverCPU:       1,
		JobDriverMem:       1,
		JobExecCPU:         1,
		JobExecMem:         1,
		CMLWorkspace:       1,
		CMLXSmallSession:   1,
		CMLSmallSession:    1,
		CMLMediumSession:   1,
		CMLNFS:             100,
	}
}

func Test_Compute(t *testing.T) {
	testCases := []struct {
		name         string
		requirements models.Requirements
		expected     models.Result
	}{
		{
			name:         "defaults",
			requirements: models.DefaultRequirements(),
			expected: models.Result{
				Nodes:          52,
				CPUCores:       2005,
				RAMGB:          8171,
				StorageGB:      18725,
				NFSGB:          0,
				CDWLocalDiskGB: 8820,
				CCUCPU:         3893,
				CCURAM:         15659,
				Warnings:       []string{},
			},
		},
		{
			name:         "all zero",
			requirements: models.Requirements{},
			expected: models.Result{
				Nodes:          45,
				CPUCores:       1888,
				RAMGB:          7488,
				StorageGB:      18525,
				NFSGB:          0,
				CDWLocalDiskGB: 8820,
				CCUCPU:         3776,
				CCURAM:         14976,
				Warnings:       []string{},
			},
		},
		{
			name:         "form minimums",
			requirements: minimumRequirements(),
			expected: models.Result{
				Nodes:          52,
				CPUCores:       1928,
				RAMGB:          7908,
				StorageGB:      18525,
				NFSGB:          0,
				CDWLocalDiskGB: 8820,
				CCUCPU:         3816,
				CCURAM:         15396,
				Warnings:       []string{},
			},
		},
	}

	calculator := New(models.DefaultBaseline())

	for _, tc := range testCases {
		actual, err := calculator.Compute(tc.requirements)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, actual, tc.name)
	}
}

func Test_Compute_NFS(t *testing.T) {
	testCases := []struct {
		name        string
		internalNFS bool
		size        int
		expected    int
	}{
		{name: "internal", internalNFS: true, size: 100, expected: 100},
		{name: "internal large", internalNFS: true, size: 4096, expected: 4096},
		{name: "internal below minimum", internalNFS: true, size: 10, expected: 10},
		{name: "external", internalNFS: false, size: 100, expected: 0},
		{name: "external large", internalNFS: false, size: 4096, expected: 0},
		{name: "external below minimum", internalNFS: false, size: 10, expected: 0},
	}

	calculator := New(models.DefaultBaseline())

	for _, tc := range testCases {
		requirements := models.DefaultRequirements()
		requirements.InternalNFS = tc.internalNFS
		requirements.CMLNFS = tc.size

		actual, err := calculator.Compute(requirements)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, actual.NFSGB, tc.name)
	}
}

func Test_Compute_NodeToggles(t *testing.T) {
	calculator := New(models.DefaultBaseline())

	base, err := calculator.Compute(models.Requirements{})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		mutate   func(r *models.Requirements)
		expected int
	}{
		{name: "no backup workspace", mutate: func(r *models.Requirements) { r.BackupWorkspace = 0 }, expected: 0},
		{name: "one backup workspace", mutate: func(r *models.Requirements) { r.BackupWorkspace = 1 }, expected: 1},
		{name: "three backup workspaces", mutate: func(r *models.Requirements) { r.BackupWorkspace = 3 }, expected: 3},
		{name: "model registry off", mutate: func(r *models.Requirements) { r.ModelRegistry = false }, expected: 0},
		{name: "model registry on", mutate: func(r *models.Requirements) { r.ModelRegistry = true }, expected: 1},
		{name: "no drs backup", mutate: func(r *models.Requirements) { r.DRSBackup = 0 }, expected: 0},
		{name: "two drs backups", mutate: func(r *models.Requirements) { r.DRSBackup = 2 }, expected: 2},
	}

	for _, tc := range testCases {
		requirements := models.Requirements{}
		tc.mutate(&requirements)

		actual, err := calculator.Compute(requirements)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.expected, actual.Nodes-base.Nodes, tc.name)
		assert.Equal(t, base.CPUCores, actual.CPUCores, tc.name)
		assert.Equal(t, base.RAMGB, actual.RAMGB, tc.name)
	}
}

func Test_Compute_CCUOffset(t *testing.T) {
	calculator := New(models.DefaultBaseline())

	for _, requirements := range []models.Requirements{
		{},
		minimumRequirements(),
		models.DefaultRequirements(),
		{HiveProdExec: 40, JobQuantity: 100, JobDriverCPU: 3, JobDriverMem: 9, ModelRegistry: true},
	} {
		actual, err := calculator.Compute(requirements)
		require.NoError(t, err)
		assert.Equal(t, 1888, actual.CCUCPU-actual.CPUCores)
		assert.Equal(t, 7488, actual.CCURAM-actual.RAMGB)
	}
}

func Test_Compute_Monotonic(t *testing.T) {
	calculator := New(models.DefaultBaseline())

	start := models.DefaultRequirements()
	start.InternalNFS = true

	base, err := calculator.Compute(start)
	require.NoError(t, err)

	value := reflect.ValueOf(start)
	for i := 0; i < value.NumField(); i++ {
		field := value.Type().Field(i)
		if field.Type.Kind() != reflect.Int {
			continue
		}

		bumped := start
		reflect.ValueOf(&bumped).Elem().Field(i).SetInt(value.Field(i).Int() + 5)

		actual, err := calculator.Compute(bumped)
		require.NoError(t, err, field.Name)

		assert.GreaterOrEqual(t, actual.Nodes, base.Nodes, field.Name)
		assert.GreaterOrEqual(t, actual.CPUCores, base.CPUCores, field.Name)
		assert.GreaterOrEqual(t, actual.RAMGB, base.RAMGB, field.Name)
		assert.GreaterOrEqual(t, actual.StorageGB, base.StorageGB, field.Name)
		assert.GreaterOrEqual(t, actual.NFSGB, base.NFSGB, field.Name)
		assert.GreaterOrEqual(t, actual.CDWLocalDiskGB, base.CDWLocalDiskGB, field.Name)
		assert.GreaterOrEqual(t, actual.CCUCPU, base.CCUCPU, field.Name)
		assert.GreaterOrEqual(t, actual.CCURAM, base.CCURAM, field.Name)
	}

	flagged := start
	flagged.ModelRegistry = true
	actual, err := calculator.Compute(flagged)
	require.NoError(t, err)
	assert.Equal(t, base.Nodes+1, actual.Nodes)
}

func Test_Compute_Deterministic(t *testing.T) {
	calculator := New(models.DefaultBaseline())

	first, err := calculator.Compute(models.DefaultRequirements())
	require.NoError(t, err)

	second, err := calculator.Compute(models.DefaultRequirements())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_Compute_InvalidInput(t *testing.T) {
	calculator := New(models.DefaultBaseline())

	requirements := models.DefaultRequirements()
	requirements.JobExecMem = -20

	_, err := calculator.Compute(requirements)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	var fieldErr *validate.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "job_exec_mem", fieldErr.Field)
}

func Test_Compute_OutOfRange(t *testing.T) {
	calculator := New(models.DefaultBaseline())

	requirements := models.DefaultRequirements()
	requirements.ImpalaLiteExec = 1 << 32
	requirements.ImpalaLiteExecCPU = 1 << 31

	_, err := calculator.Compute(requirements)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	var fieldErr *validate.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "impala_lite_exec", fieldErr.Field)
	assert.Equal(t, "must be less than or equal to 1000000", fieldErr.Reason)
}

func Test_Compute_LargestInputStaysPositive(t *testing.T) {
	calculator := New(models.DefaultBaseline())

	requirements := models.Requirements{InternalNFS: true, ModelRegistry: true}
	value := reflect.ValueOf(&requirements).Elem()
	for i := 0; i < value.NumField(); i++ {
		if value.Field(i).Kind() == reflect.Int {
			value.Field(i).SetInt(1000000)
		}
	}

	actual, err := calculator.Compute(requirements)
	require.NoError(t, err)

	assert.Positive(t, actual.Nodes)
	assert.Positive(t, actual.CPUCores)
	assert.Positive(t, actual.RAMGB)
	assert.Positive(t, actual.StorageGB)
	assert.Positive(t, actual.CCUCPU)
	assert.Positive(t, actual.CCURAM)
	assert.Equal(t, 1888, actual.CCUCPU-actual.CPUCores)
}

func Test_Compute_CustomBaseline(t *testing.T) {
	baseline := models.DefaultBaseline()
	baseline.Worker.Count = 4
	baseline.Secondary.Count = 0

	calculator := New(baseline)

	actual, err := calculator.Compute(models.Requirements{})
	require.NoError(t, err)

	expected := models.Result{
		Nodes:          5,
		CPUCores:       32 + 4*64,
		RAMGB:          64 + 4*256,
		StorageGB:      1235 + 4*1235,
		CDWLocalDiskGB: 4 * 630,
		CCUCPU:         2 * (32 + 4*64),
		CCURAM:         2 * (64 + 4*256),
		Warnings:       []string{},
	}

	assert.Equal(t, expected, actual)
	assert.Equal(t, baseline, calculator.Baseline())
}
