package bisync

// LegalNotice provides license notices for bisync and the third-party
// dependencies it ships with.
const LegalNotice = `bisync

Licensed under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.


================================================================================
bisync depends on the following third-party software:
================================================================================

Go, the Go standard library, and the Go sys subrepository.

https://golang.org/
https://github.com/golang/

Copyright (c) 2009 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>

Used under the terms of the 2-Clause BSD License.

--------------------------------------------------------------------------------

Cobra and pflag

https://github.com/spf13/cobra
https://github.com/spf13/pflag

Copyright 2013 Steve Francia <spf@spf13.com>

Used under the terms of the Apache License, Version 2.0.

--------------------------------------------------------------------------------

mousetrap

https://github.com/inconshreveable/mousetrap

Copyright 2014 Alan Shreve

Used under the terms of the Apache License, Version 2.0.

--------------------------------------------------------------------------------

color and go-colorable

https://github.com/fatih/color
https://github.com/mattn/go-colorable

Copyright (c) 2013 Fatih Arslan
Copyright (c) 2016 Yasuhiro Matsumoto

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-isatty

https://github.com/mattn/go-isatty

Copyright (c) Yasuhiro Matsumoto

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008 Dustin Sallings

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

doublestar

https://github.com/bmatcuk/doublestar

Copyright (c) 2014 Bob Matcuk

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

uuid

https://github.com/google/uuid

Copyright (c) 2009,2014 Google Inc. All rights reserved.

Used under the terms of the 3-Clause BSD License.

--------------------------------------------------------------------------------

yaml.v3

https://github.com/go-yaml/yaml

Copyright (c) 2006-2011 Kirill Simonov
Copyright (c) 2011-2019 Canonical Ltd

Used under the terms of the MIT License and the Apache License, Version 2.0.
`
