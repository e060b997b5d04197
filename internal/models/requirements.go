package models

// Requirements is the sizing input. Field names follow the calculator form and
// are shared by JSON, YAML, form and spreadsheet input. Quantities are capped at
// one million so that every total fits in an int.
type Requirements struct {
	Environment int `json:"environment" yaml:"environment" validate:"gte=0,lte=1000000"`
	EmbeddedDB  int `json:"embedded_db" yaml:"embedded_db" validate:"gte=0,lte=1000000"`

	DataCatalog  int `json:"data_catalog" yaml:"data_catalog" validate:"gte=0,lte=1000000"`
	HiveVW       int `json:"hive_vw" yaml:"hive_vw" validate:"gte=0,lte=1000000"`
	HiveLiteExec int `json:"hive_lite_exec" yaml:"hive_lite_exec" validate:"gte=0,lte=1000000"`
	HiveProdExec int `json:"hive_prod_exec" yaml:"hive_prod_exec" validate:"gte=0,lte=1000000"`

	ImpalaVW            int `json:"impala_vw" yaml:"impala_vw" validate:"gte=0,lte=1000000"`
	ImpalaLiteExec      int `json:"impala_lite_exec" yaml:"impala_lite_exec" validate:"gte=0,lte=1000000"`
	ImpalaLiteExecCPU   int `json:"impala_lite_exec_cpu" yaml:"impala_lite_exec_cpu" validate:"gte=0,lte=1000000"`
	ImpalaLiteExecMem   int `json:"impala_lite_exec_mem" yaml:"impala_lite_exec_mem" validate:"gte=0,lte=1000000"`
	ImpalaLiteCoordQty  int `json:"impala_lite_coord_qty" yaml:"impala_lite_coord_qty" validate:"gte=0,lte=1000000"`
	ImpalaLiteCoordCPU  int `json:"impala_lite_coord_cpu" yaml:"impala_lite_coord_cpu" validate:"gte=0,lte=1000000"`
	ImpalaLiteCoordMem  int `json:"impala_lite_coord_mem" yaml:"impala_lite_coord_mem" validate:"gte=0,lte=1000000"`
	ImpalaProdExec      int `json:"impala_prod_exec" yaml:"impala_prod_exec" validate:"gte=0,lte=1000000"`
	ImpalaProdExecCPU   int `json:"impala_prod_exec_cpu" yaml:"impala_prod_exec_cpu" validate:"gte=0,lte=1000000"`
	ImpalaProdExecMem   int `json:"impala_prod_exec_mem" yaml:"impala_prod_exec_mem" validate:"gte=0,lte=1000000"`
	ImpalaProdCoordQty  int `json:"impala_prod_coord_qty" yaml:"impala_prod_coord_qty" validate:"gte=0,lte=1000000"`
	ImpalaProdCoordCPU  int `json:"impala_prod_coord_cpu" yaml:"impala_prod_coord_cpu" validate:"gte=0,lte=1000000"`
	ImpalaProdCoordMem  int `json:"impala_prod_coord_mem" yaml:"impala_prod_coord_mem" validate:"gte=0,lte=1000000"`
	DataVizSmall        int `json:"data_viz_small" yaml:"data_viz_small" validate:"gte=0,lte=1000000"`
	DataVizMedium       int `json:"data_viz_medium" yaml:"data_viz_medium" validate:"gte=0,lte=1000000"`
	DataVizLarge        int `json:"data_viz_large" yaml:"data_viz_large" validate:"gte=0,lte=1000000"`

	CDEService   int `json:"cde_service" yaml:"cde_service" validate:"gte=0,lte=1000000"`
	CDEVC        int `json:"cde_vc" yaml:"cde_vc" validate:"gte=0,lte=1000000"`
	JobQuantity  int `json:"job_quantity" yaml:"job_quantity" validate:"gte=0,lte=1000000"`
	JobExec      int `json:"job_exec" yaml:"job_exec" validate:"gte=0,lte=1000000"`
	JobDriverCPU int `json:"job_driver_cpu" yaml:"job_driver_cpu" validate:"gte=0,lte=1000000"`
	JobDriverMem int `json:"job_driver_mem" yaml:"job_driver_mem" validate:"gte=0,lte=1000000"`
	JobExecCPU   int `json:"job_exec_cpu" yaml:"job_exec_cpu" validate:"gte=0,lte=1000000"`
	JobExecMem   int `json:"job_exec_mem" yaml:"job_exec_mem" validate:"gte=0,lte=1000000"`

	CMLWorkspace     int  `json:"cml_workspace" yaml:"cml_workspace" validate:"gte=0,lte=1000000"`
	CMLXSmallSession int  `json:"cml_xsmall_session" yaml:"cml_xsmall_session" validate:"gte=0,lte=1000000"`
	CMLSmallSession  int  `json:"cml_small_session" yaml:"cml_small_session" validate:"gte=0,lte=1000000"`
	CMLMediumSession int  `json:"cml_medium_session" yaml:"cml_medium_session" validate:"gte=0,lte=1000000"`
	CMLNFS           int  `json:"cml_nfs" yaml:"cml_nfs" validate:"gte=0,lte=1000000"`
	InternalNFS      bool `json:"internal_nfs" yaml:"internal_nfs"`
	BackupWorkspace  int  `json:"backup_workspace" yaml:"backup_workspace" validate:"gte=0,lte=1000000"`
	ModelRegistry    bool `json:"model_registry" yaml:"model_registry"`

	DRSBackup int `json:"drs_backup" yaml:"drs_backup" validate:"gte=0,lte=1000000"`

	// Collected by the form but never used in the computation.
	MaxCPUPerNode     int `json:"max_cpu_per_node" yaml:"max_cpu_per_node" validate:"gte=0,lte=1000000"`
	MaxRAMPerNode     int `json:"max_ram_per_node" yaml:"max_ram_per_node" validate:"gte=0,lte=1000000"`
	MaxStoragePerNode int `json:"max_storage_per_node" yaml:"max_storage_per_node" validate:"gte=0,lte=1000000"`
}

func DefaultRequirements() Requirements {
	return Requirements{
		Environment: 1,
		EmbeddedDB:  200,

		DataCatalog:  1,
		HiveVW:       1,
		HiveLiteExec: 1,
		HiveProdExec: 1,

		ImpalaVW:           1,
		ImpalaLiteExec:     1,
		ImpalaLiteExecCPU:  3,
		ImpalaLiteExecMem:  25,
		ImpalaLiteCoordQty: 2,
		ImpalaLiteCoordCPU: 1,
		ImpalaLiteCoordMem: 25,
		ImpalaProdExec:     1,
		ImpalaProdExecCPU:  14,
		ImpalaProdExecMem:  128,
		ImpalaProdCoordQty: 2,
		ImpalaProdCoordCPU: 14,
		ImpalaProdCoordMem: 128,
		DataVizSmall:       1,
		DataVizMedium:      1,
		DataVizLarge:       1,

		CDEService:   1,
		CDEVC:        1,
		JobQuantity:  7,
		JobExec:      2,
		JobDriverCPU: 2,
		JobDriverMem: 4,
		JobExecCPU:   2,
		JobExecMem:   20,

		CMLWorkspace:     1,
		CMLXSmallSession: 2,
		CMLSmallSession:  2,
		CMLMediumSession: 3,
		CMLNFS:           100,

		MaxCPUPerNode:     32,
		MaxRAMPerNode:     128,
		MaxStoragePerNode: 2000,
	}
}
