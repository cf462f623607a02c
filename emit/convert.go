// Copyright 2026 The Nuru Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emit

// conversionExpr returns the TryParse-shaped conversion expression for
// a canonical type name, bit-exact per spec §4.7.4. varName is the
// name bound to the parsed value on success; src is the source string
// expression.
func conversionExpr(canonical, src, varName string) string {
	switch canonical {
	case "int", "long", "short", "byte", "sbyte", "uint", "ulong", "ushort",
		"double", "float", "decimal":
		return clrName(canonical) + ".TryParse(" + src + ", System.Globalization.NumberStyles.Any, System.Globalization.CultureInfo.InvariantCulture, out var " + varName + ")"
	case "bool":
		return "bool.TryParse(" + src + ", out var " + varName + ")"
	case "guid":
		return "System.Guid.TryParse(" + src + ", out var " + varName + ")"
	case "datetime":
		return "System.DateTime.TryParse(" + src + ", System.Globalization.CultureInfo.InvariantCulture, System.Globalization.DateTimeStyles.None, out var " + varName + ")"
	case "dateonly":
		return "System.DateOnly.TryParse(" + src + ", System.Globalization.CultureInfo.InvariantCulture, System.Globalization.DateTimeStyles.None, out var " + varName + ")"
	case "timeonly":
		return "System.TimeOnly.TryParse(" + src + ", System.Globalization.CultureInfo.InvariantCulture, System.Globalization.DateTimeStyles.None, out var " + varName + ")"
	case "timespan":
		return "System.TimeSpan.TryParse(" + src + ", System.Globalization.CultureInfo.InvariantCulture, out var " + varName + ")"
	case "string":
		return "true" // identity, varName bound directly by the caller
	case "uri":
		return "System.Uri.TryCreate(" + src + ", System.UriKind.RelativeOrAbsolute, out var " + varName + ")"
	case "ipaddress":
		return "System.Net.IPAddress.TryParse(" + src + ", out var " + varName + ")"
	default:
		return "TryConvertCustom<" + canonical + ">(" + src + ", out var " + varName + ")"
	}
}

// clrName maps a canonical short type name to its CLR alias, used both
// in conversionExpr and in field/parameter type emission.
func clrName(canonical string) string {
	switch canonical {
	case "int":
		return "int"
	case "long":
		return "long"
	case "short":
		return "short"
	case "byte":
		return "byte"
	case "sbyte":
		return "sbyte"
	case "uint":
		return "uint"
	case "ulong":
		return "ulong"
	case "ushort":
		return "ushort"
	case "double":
		return "double"
	case "float":
		return "float"
	case "decimal":
		return "decimal"
	case "bool":
		return "bool"
	case "guid":
		return "System.Guid"
	case "datetime":
		return "System.DateTime"
	case "dateonly":
		return "System.DateOnly"
	case "timeonly":
		return "System.TimeOnly"
	case "timespan":
		return "System.TimeSpan"
	case "string":
		return "string"
	case "uri":
		return "System.Uri"
	case "fileinfo":
		return "System.IO.FileInfo"
	case "directoryinfo":
		return "System.IO.DirectoryInfo"
	case "ipaddress":
		return "System.Net.IPAddress"
	case "":
		return "string"
	default:
		return canonical
	}
}
