package server

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/gorilla/schema"
	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/validate"
)

const checkboxOn = "on"

type formField struct {
	Name     string
	Label    string
	Min      int
	Checkbox bool
}

type formGroup struct {
	Title  string
	Fields []formField
}

// The min values are input hints for the browser only.
var formGroups = []formGroup{
	{
		Title: "Environment",
		Fields: []formField{
			{Name: "environment", Label: "Environment", Min: 1},
			{Name: "embedded_db", Label: "Embedded Database (GB, recommended 200)"},
		},
	},
	{
		Title: "CDW",
		Fields: []formField{
			{Name: "data_catalog", Label: "Data Catalog", Min: 1},
			{Name: "hive_vw", Label: "Hive Virtual Warehouse", Min: 1},
			{Name: "hive_lite_exec", Label: "Hive LITE Executor", Min: 1},
			{Name: "hive_prod_exec", Label: "Hive PROD Executor", Min: 1},
			{Name: "impala_vw", Label: "Impala Virtual Warehouse", Min: 1},
			{Name: "impala_lite_exec", Label: "Impala LITE Executor", Min: 1},
			{Name: "impala_lite_exec_cpu", Label: "Impala LITE Executor CPU cores", Min: 1},
			{Name: "impala_lite_exec_mem", Label: "Impala LITE Executor Mem (GB)", Min: 25},
			{Name: "impala_lite_coord_qty", Label: "Impala LITE Coordinator Quantity", Min: 1},
			{Name: "impala_lite_coord_cpu", Label: "Impala LITE Coordinator CPU cores", Min: 1},
			{Name: "impala_lite_coord_mem", Label: "Impala LITE Coordinator Mem (GB)", Min: 25},
			{Name: "impala_prod_exec", Label: "Impala PROD Executor", Min: 1},
			{Name: "impala_prod_exec_cpu", Label: "Impala PROD Executor CPU cores", Min: 1},
			{Name: "impala_prod_exec_mem", Label: "Impala PROD Executor Mem (GB)", Min: 128},
			{Name: "impala_prod_coord_qty", Label: "Impala PROD Coordinator Quantity", Min: 1},
			{Name: "impala_prod_coord_cpu", Label: "Impala PROD Coordinator CPU cores", Min: 1},
			{Name: "impala_prod_coord_mem", Label: "Impala PROD Coordinator Mem (GB)", Min: 128},
			{Name: "data_viz_small", Label: "Data Viz small (2 CPU, 8 GB)", Min: 1},
			{Name: "data_viz_medium", Label: "Data Viz medium (4 CPU, 16 GB)", Min: 1},
			{Name: "data_viz_large", Label: "Data Viz large (6 CPU, 24 GB)", Min: 1},
		},
	},
	{
		Title: "CDE",
		Fields: []formField{
			{Name: "cde_service", Label: "CDE Service", Min: 1},
			{Name: "cde_vc", Label: "Virtual Cluster", Min: 1},
			{Name: "job_quantity", Label: "Quantity of Jobs", Min: 1},
			{Name: "job_exec", Label: "Quantity of Executors", Min: 1},
			{Name: "job_driver_cpu", Label: "Job Driver CPU", Min: 1},
			{Name: "job_driver_mem", Label: "Job Driver Mem (GB)", Min: 1},
			{Name: "job_exec_cpu", Label: "Job Executor CPU", Min: 1},
			{Name: "job_exec_mem", Label: "Job Executor Mem (GB)", Min: 1},
		},
	},
	{
		Title: "CML",
		Fields: []formField{
			{Name: "cml_workspace", Label: "Workspace", Min: 1},
			{Name: "cml_xsmall_session", Label: "XSmall Session (2 CPU, 4 GB)", Min: 1},
			{Name: "cml_small_session", Label: "Small Session (4 CPU, 8 GB)", Min: 1},
			{Name: "cml_medium_session", Label: "Medium Session (6 CPU, 16 GB)", Min: 1},
			{Name: "cml_nfs", Label: "NFS (GB)", Min: 100},
			{Name: "internal_nfs", Label: "Use Internal NFS", Checkbox: true},
			{Name: "backup_workspace", Label: "Backup Workspace"},
			{Name: "model_registry", Label: "Model Registry", Checkbox: true},
		},
	},
	{
		Title: "DRS",
		Fields: []formField{
			{Name: "drs_backup", Label: "Control Plane Backups"},
		},
	},
	{
		Title: "Hardware",
		Fields: []formField{
			{Name: "max_cpu_per_node", Label: "Max CPU per Node", Min: 1},
			{Name: "max_ram_per_node", Label: "Max RAM (GB) per Node", Min: 1},
			{Name: "max_storage_per_node", Label: "Max Storage (GB) per Node", Min: 1},
		},
	},
}

var checkboxes = []string{"internal_nfs", "model_registry"}

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// decodeForm fills the numeric fields posted in form on top of defaults. Checkboxes are
// only true when posted as "on"; an unchecked box is simply absent from the form.
func decodeForm(decoder *schema.Decoder, form url.Values, defaults models.Requirements) (models.Requirements, error) {
	values := make(url.Values, len(form))
	for key, value := range form {
		values[key] = value
	}
	for _, key := range checkboxes {
		delete(values, key)
	}

	requirements := defaults

	if err := decoder.Decode(&requirements, values); err != nil {
		var multiErr schema.MultiError
		if !errors.As(err, &multiErr) {
			return models.Requirements{}, fmt.Errorf("failed to decode form: %w", err)
		}

		keys := make([]string, 0, len(multiErr))
		for key := range multiErr {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		return models.Requirements{}, validate.NewFieldError(keys[0], form.Get(keys[0]), "must be an integer")
	}

	requirements.InternalNFS = form.Get("internal_nfs") == checkboxOn
	requirements.ModelRegistry = form.Get("model_registry") == checkboxOn

	return requirements, nil
}
