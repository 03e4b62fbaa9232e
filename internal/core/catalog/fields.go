package catalog

var productoAvailable = []string{
	"id",
	"codigo_alterno",
	"nombre",
	"codigo_grupo",
	"habilitado",
	"congelado",
	"item_compra",
	"item_venta",
	"item_inventario",
	"codigo_hertz",
	"tipo",
	"tipo_sap",
	"marca",
	"anio",
	"modelo",
	"color",
	"cilindrada",
	"serie",
	"motor",
	"placa",
	"tipo_vehiculo",
	"chasis",
	"precio_costo",
	"precio_venta",
	"km",
	"k5",
	"k10",
	"k20",
	"k40",
	"k100",
	"sincronizado",
	"horas",
	"tipo_mant",
	"clase",
}

var productoFilters = map[string]FieldSpec{
	// identification
	"id":             {Column: "id", Op: EQ, Kind: Int},
	"ids":            {Column: "id", Op: IN, Kind: Int},
	"codigo_alterno": {Column: "codigo_alterno", Op: LIKE},
	"nombre":         {Column: "nombre", Op: LIKE},

	// vehicle specs
	"marca":         {Column: "marca", Op: LIKE},
	"anio":          {Column: "anio", Op: EQ, Kind: Int},
	"anio_desde":    {Column: "anio", Op: GTE, Kind: Int},
	"anio_hasta":    {Column: "anio", Op: LTE, Kind: Int},
	"modelo":        {Column: "modelo", Op: LIKE},
	"color":         {Column: "color", Op: LIKE},
	"cilindrada":    {Column: "cilindrada", Op: LIKE},
	"tipo_vehiculo": {Column: "tipo_vehiculo", Op: LIKE},

	// vehicle identifiers
	"serie":  {Column: "serie", Op: LIKE},
	"motor":  {Column: "motor", Op: LIKE},
	"placa":  {Column: "placa", Op: LIKE},
	"chasis": {Column: "chasis", Op: LIKE},

	// prices
	"precio_costo":        {Column: "precio_costo", Op: EQ, Kind: Decimal},
	"precio_costo_minimo": {Column: "precio_costo", Op: GTE, Kind: Decimal},
	"precio_costo_maximo": {Column: "precio_costo", Op: LTE, Kind: Decimal},
	"precio_venta":        {Column: "precio_venta", Op: EQ, Kind: Decimal},
	"precio_venta_minimo": {Column: "precio_venta", Op: GTE, Kind: Decimal},
	"precio_venta_maximo": {Column: "precio_venta", Op: LTE, Kind: Decimal},

	// mileage and hours
	"km":           {Column: "km", Op: EQ, Kind: Int},
	"km_minimo":    {Column: "km", Op: GTE, Kind: Int},
	"km_maximo":    {Column: "km", Op: LTE, Kind: Int},
	"horas":        {Column: "horas", Op: EQ, Kind: Int},
	"horas_minimo": {Column: "horas", Op: GTE, Kind: Int},
	"horas_maximo": {Column: "horas", Op: LTE, Kind: Int},

	// status flags and types
	"habilitado":      {Column: "habilitado", Op: EQ, Kind: Bool},
	"congelado":       {Column: "congelado", Op: EQ, Kind: Bool},
	"item_venta":      {Column: "item_venta", Op: EQ, Kind: Bool},
	"item_compra":     {Column: "item_compra", Op: EQ, Kind: Bool},
	"item_inventario": {Column: "item_inventario", Op: EQ, Kind: Bool},
	"tipo":            {Column: "tipo", Op: EQ},
	"tipo_mant":       {Column: "tipo_mant", Op: EQ},

	// other
	"codigo_grupo": {Column: "codigo_grupo", Op: LIKE},
	"clase":        {Column: "clase", Op: LIKE},
}

var ventasAvailable = []string{
	"id",
	"numero",
	"id_usuario",
	"id_tienda",
	"id_estado",
	"id_producto",

	"kilometraje",
	"cilindraje",
	"trasmision",

	"precio_minimo",
	"precio_maximo",
	"precio_venta",

	"fecha",
	"hora",
	"fecha_vendido",
	"fecha_negociacion",
	"fecha_asignacion",
	"fecha_reparacion_completada",
	"fecha_promesa",

	"id_vendedor",
	"id_televentas",

	"id_impuesto",
	"id_factura",
	"foto",

	"id_inspeccion",
	"id_estado_pintura",
	"id_estado_interior",
	"id_estado_mecanica",
	"tipo_ventas_reparacion",
	"reproceso",

	"observaciones",
	"observaciones_reparacion",

	"fecha_creacion",
	"usuario_creacion",
	"fecha_modificacion",
	"usuario_modificacion",
}

var ventasFilters = map[string]FieldSpec{
	"id":            {Column: "id", Op: EQ, Kind: Int},
	"ids":           {Column: "id", Op: IN, Kind: Int},
	"producto_id":   {Column: "id_producto", Op: EQ, Kind: Int},
	"productos_ids": {Column: "id_producto", Op: IN, Kind: Int},

	"numero":      {Column: "numero", Op: EQ},
	"id_usuario":  {Column: "id_usuario", Op: EQ, Kind: Int},
	"id_tienda":   {Column: "id_tienda", Op: EQ, Kind: Int},
	"id_estado":   {Column: "id_estado", Op: EQ, Kind: Int},
	"id_vendedor": {Column: "id_vendedor", Op: EQ, Kind: Int},

	// prices: the store keeps the negotiation window in dedicated
	// precio_minimo/precio_maximo columns, so the range keys target those
	// columns rather than splitting precio_venta.
	"precio_venta":  {Column: "precio_venta", Op: EQ, Kind: Decimal},
	"precio_minimo": {Column: "precio_minimo", Op: GTE, Kind: Decimal},
	"precio_maximo": {Column: "precio_maximo", Op: LTE, Kind: Decimal},

	"fecha":         {Column: "fecha", Op: EQ, Kind: Date},
	"fecha_desde":   {Column: "fecha", Op: GTE, Kind: Date},
	"fecha_hasta":   {Column: "fecha", Op: LTE, Kind: Date},
	"fecha_vendido": {Column: "fecha_vendido", Op: EQ, Kind: Date},

	"trasmision":             {Column: "trasmision", Op: EQ},
	"kilometraje":            {Column: "kilometraje", Op: EQ, Kind: Int},
	"tipo_ventas_reparacion": {Column: "tipo_ventas_reparacion", Op: EQ},
}

var estadosAvailable = []string{
	"id",
	"nombre",
	"foto",
	"envio_correo",
	"ventas_reparacion",
}

var estadosFilters = map[string]FieldSpec{
	"id":                {Column: "id", Op: EQ, Kind: Int},
	"ids":               {Column: "id", Op: IN, Kind: Int},
	"nombre":            {Column: "nombre", Op: LIKE},
	"envio_correo":      {Column: "envio_correo", Op: EQ, Kind: Bool},
	"ventas_reparacion": {Column: "ventas_reparacion", Op: EQ, Kind: Bool},
}
